package catalog

import "github.com/GoSim-25-26J-441/scaffold-forge-backend/internal/templates/domain"

func builtinLanguages() []domain.LanguageInfo {
	return []domain.LanguageInfo{
		{
			ID:            domain.LangJava,
			Name:          "Java",
			Description:   "Object-oriented language for enterprise and backend services",
			Icon:          "☕",
			Version:       "17",
			Website:       "https://www.java.com",
			Documentation: "https://docs.oracle.com/en/java/",
		},
		{
			ID:            domain.LangDotnet,
			Name:          ".NET",
			Description:   "Cross-platform framework for C# applications and web APIs",
			Icon:          "🔷",
			Version:       "8.0",
			Website:       "https://dotnet.microsoft.com",
			Documentation: "https://learn.microsoft.com/dotnet/",
		},
		{
			ID:            domain.LangPython,
			Name:          "Python",
			Description:   "General purpose language for scripting, data and web services",
			Icon:          "🐍",
			Version:       "3.12",
			Website:       "https://www.python.org",
			Documentation: "https://docs.python.org/3/",
		},
		{
			ID:            domain.LangJavaScript,
			Name:          "JavaScript",
			Description:   "Node.js runtime for servers and tooling",
			Icon:          "🟨",
			Version:       "20",
			Website:       "https://nodejs.org",
			Documentation: "https://nodejs.org/docs/latest/api/",
		},
		{
			ID:            domain.LangTypeScript,
			Name:          "TypeScript",
			Description:   "Typed superset of JavaScript compiled for Node.js",
			Icon:          "🔵",
			Version:       "5.4",
			Website:       "https://www.typescriptlang.org",
			Documentation: "https://www.typescriptlang.org/docs/",
		},
	}
}

func builtinTemplates() []*domain.Template {
	var out []*domain.Template
	out = append(out, javaTemplates()...)
	out = append(out, dotnetTemplates()...)
	out = append(out, pythonTemplates()...)
	out = append(out, nodeTemplates()...)
	return out
}

// projectVars is the variable set every builtin template declares.
func projectVars() map[string]string {
	return map[string]string{
		"project_name":        domain.VarString,
		"project_description": domain.VarString,
	}
}

const readmeBody = `# {{project_name}}

{{project_description}}
`
