package catalog

import "github.com/GoSim-25-26J-441/scaffold-forge-backend/internal/templates/domain"

const pythonGitignore = `__pycache__/
*.py[cod]
.venv/
venv/
.env
.pytest_cache/
`

func pythonTemplates() []*domain.Template {
	return []*domain.Template{
		{
			ID:            "python-script",
			Name:          "Python Script",
			Description:   "Single-module Python command line script",
			Language:      domain.LangPython,
			Type:          "console",
			Tags:          []string{"cli", "starter"},
			Complexity:    domain.ComplexityBeginner,
			EstimatedTime: "1 minute",
			Files: map[string]string{
				"README.md": readmeBody + `
## Run

` + "```" + `
python main.py
` + "```" + `
`,
				".gitignore":       pythonGitignore,
				"requirements.txt": "# {{project_name}} has no third-party dependencies yet\n",
				"main.py": `"""{{project_description}}"""


def main() -> None:
    print("Hello from {{project_name}}!")


if __name__ == "__main__":
    main()
`,
			},
			Variables:         projectVars(),
			Dependencies:      []string{"python-3.12"},
			SetupInstructions: "Run `python main.py`.",
		},
		{
			ID:            "python-fastapi",
			Name:          "FastAPI Service",
			Description:   "FastAPI web service with a health route and Dockerfile",
			Language:      domain.LangPython,
			Type:          "web-api",
			Tags:          []string{"fastapi", "rest", "docker"},
			Complexity:    domain.ComplexityIntermediate,
			EstimatedTime: "5 minutes",
			Files: map[string]string{
				"README.md": readmeBody + `
## Run

` + "```" + `
pip install -r requirements.txt
uvicorn app.main:app --reload
` + "```" + `
`,
				".gitignore": pythonGitignore,
				"requirements.txt": `fastapi==0.110.0
uvicorn[standard]==0.29.0
`,
				"app/__init__.py": "\"\"\"{{project_name}} application package.\"\"\"\n",
				"app/main.py": `from fastapi import FastAPI

app = FastAPI(title="{{project_name}}", description="{{project_description}}")


@app.get("/health")
async def health() -> dict:
    return {"status": "healthy", "service": "{{project_name}}"}
`,
				"Dockerfile": `FROM python:3.12-slim

WORKDIR /app
COPY requirements.txt .
RUN pip install --no-cache-dir -r requirements.txt
COPY app ./app

EXPOSE 8000
CMD ["uvicorn", "app.main:app", "--host", "0.0.0.0", "--port", "8000"]
`,
			},
			Variables:         projectVars(),
			Dependencies:      []string{"python-3.12", "fastapi", "uvicorn"},
			SetupInstructions: "Install requirements and run `uvicorn app.main:app --reload`.",
		},
	}
}
