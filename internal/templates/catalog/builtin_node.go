package catalog

import "github.com/GoSim-25-26J-441/scaffold-forge-backend/internal/templates/domain"

const nodeGitignore = `node_modules/
dist/
npm-debug.log*
.env
.DS_Store
`

const tsconfig = `{
  "compilerOptions": {
    "target": "ES2022",
    "module": "commonjs",
    "outDir": "dist",
    "rootDir": "src",
    "strict": true,
    "esModuleInterop": true,
    "skipLibCheck": true
  },
  "include": ["src"]
}
`

func nodeTemplates() []*domain.Template {
	return []*domain.Template{
		{
			ID:            "javascript-node",
			Name:          "Node.js Application",
			Description:   "Plain Node.js application with npm scripts",
			Language:      domain.LangJavaScript,
			Type:          "console",
			Tags:          []string{"node", "npm", "starter"},
			Complexity:    domain.ComplexityBeginner,
			EstimatedTime: "1 minute",
			Files: map[string]string{
				"README.md": readmeBody + `
## Run

` + "```" + `
npm start
` + "```" + `
`,
				".gitignore": nodeGitignore,
				"package.json": `{
  "name": "{{project_name}}",
  "version": "1.0.0",
  "description": "{{project_description}}",
  "main": "index.js",
  "scripts": {
    "start": "node index.js"
  },
  "license": "MIT"
}
`,
				"index.js": `// {{project_description}}
console.log("Hello from {{project_name}}!");
`,
			},
			Variables:         projectVars(),
			Dependencies:      []string{"node-20"},
			SetupInstructions: "Run `npm start`.",
		},
		{
			ID:            "javascript-express",
			Name:          "Express REST API",
			Description:   "Express web server with JSON routes",
			Language:      domain.LangJavaScript,
			Type:          "web-api",
			Tags:          []string{"node", "express", "rest"},
			Complexity:    domain.ComplexityIntermediate,
			EstimatedTime: "3 minutes",
			Files: map[string]string{
				"README.md": readmeBody + `
## Run

` + "```" + `
npm install
npm start
curl http://localhost:3000/health
` + "```" + `
`,
				".gitignore": nodeGitignore,
				"package.json": `{
  "name": "{{project_name}}",
  "version": "1.0.0",
  "description": "{{project_description}}",
  "main": "src/server.js",
  "scripts": {
    "start": "node src/server.js",
    "dev": "nodemon src/server.js"
  },
  "dependencies": {
    "express": "^4.19.2"
  },
  "devDependencies": {
    "nodemon": "^3.1.0"
  },
  "license": "MIT"
}
`,
				"src/server.js": `const express = require("express");

const app = express();
const port = process.env.PORT || 3000;

app.use(express.json());

app.get("/", (req, res) => {
  res.json({ name: "{{project_name}}", description: "{{project_description}}" });
});

app.get("/health", (req, res) => {
  res.json({ status: "healthy" });
});

app.listen(port, () => {
  console.log("{{project_name}} listening on port " + port);
});
`,
			},
			Variables:         projectVars(),
			Dependencies:      []string{"node-20", "express"},
			SetupInstructions: "Run `npm install` then `npm start`.",
		},
		{
			ID:            "typescript-node",
			Name:          "TypeScript Node.js Application",
			Description:   "TypeScript project compiled with tsc",
			Language:      domain.LangTypeScript,
			Type:          "console",
			Tags:          []string{"node", "typescript", "starter"},
			Complexity:    domain.ComplexityBeginner,
			EstimatedTime: "2 minutes",
			Files: map[string]string{
				"README.md": readmeBody + `
## Build

` + "```" + `
npm install
npm run build
npm start
` + "```" + `
`,
				".gitignore":    nodeGitignore,
				"tsconfig.json": tsconfig,
				"package.json": `{
  "name": "{{project_name}}",
  "version": "1.0.0",
  "description": "{{project_description}}",
  "main": "dist/index.js",
  "scripts": {
    "build": "tsc",
    "start": "node dist/index.js"
  },
  "devDependencies": {
    "@types/node": "^20.12.7",
    "typescript": "^5.4.5"
  },
  "license": "MIT"
}
`,
				"src/index.ts": `// {{project_description}}
const greeting: string = "Hello from {{project_name}}!";
console.log(greeting);
`,
			},
			Variables:         projectVars(),
			Dependencies:      []string{"node-20", "typescript"},
			SetupInstructions: "Run `npm install`, `npm run build` and `npm start`.",
		},
		{
			ID:            "typescript-express",
			Name:          "TypeScript Express API",
			Description:   "Express web server written in TypeScript",
			Language:      domain.LangTypeScript,
			Type:          "web-api",
			Tags:          []string{"node", "typescript", "express", "rest"},
			Complexity:    domain.ComplexityIntermediate,
			EstimatedTime: "5 minutes",
			Files: map[string]string{
				"README.md": readmeBody + `
## Run

` + "```" + `
npm install
npm run dev
` + "```" + `
`,
				".gitignore":    nodeGitignore,
				"tsconfig.json": tsconfig,
				"package.json": `{
  "name": "{{project_name}}",
  "version": "1.0.0",
  "description": "{{project_description}}",
  "main": "dist/server.js",
  "scripts": {
    "build": "tsc",
    "start": "node dist/server.js",
    "dev": "ts-node src/server.ts"
  },
  "dependencies": {
    "express": "^4.19.2"
  },
  "devDependencies": {
    "@types/express": "^4.17.21",
    "@types/node": "^20.12.7",
    "ts-node": "^10.9.2",
    "typescript": "^5.4.5"
  },
  "license": "MIT"
}
`,
				"src/server.ts": `import express, { Request, Response } from "express";

const app = express();
const port = Number(process.env.PORT) || 3000;

app.use(express.json());

app.get("/", (_req: Request, res: Response) => {
  res.json({ name: "{{project_name}}", description: "{{project_description}}" });
});

app.get("/health", (_req: Request, res: Response) => {
  res.json({ status: "healthy" });
});

app.listen(port, () => {
  console.log("{{project_name}} listening on port " + port);
});
`,
			},
			Variables:         projectVars(),
			Dependencies:      []string{"node-20", "typescript", "express"},
			SetupInstructions: "Run `npm install` then `npm run dev`.",
		},
	}
}
