package catalog

import "github.com/GoSim-25-26J-441/scaffold-forge-backend/internal/templates/domain"

const dotnetGitignore = `bin/
obj/
*.user
.vs/
.vscode/
`

func dotnetTemplates() []*domain.Template {
	return []*domain.Template{
		{
			ID:            "dotnet-console",
			Name:          ".NET Console Application",
			Description:   "C# console application targeting .NET 8",
			Language:      domain.LangDotnet,
			Type:          "console",
			Tags:          []string{"csharp", "console", "starter"},
			Complexity:    domain.ComplexityBeginner,
			EstimatedTime: "2 minutes",
			Files: map[string]string{
				"README.md": readmeBody + `
## Run

` + "```" + `
dotnet run
` + "```" + `
`,
				".gitignore": dotnetGitignore,
				"ConsoleApp.csproj": `<Project Sdk="Microsoft.NET.Sdk">

  <PropertyGroup>
    <OutputType>Exe</OutputType>
    <TargetFramework>net8.0</TargetFramework>
    <ImplicitUsings>enable</ImplicitUsings>
    <Nullable>enable</Nullable>
    <AssemblyName>{{project_name}}</AssemblyName>
    <Description>{{project_description}}</Description>
  </PropertyGroup>

</Project>
`,
				"Program.cs": `// {{project_description}}
Console.WriteLine("Hello from {{project_name}}!");
`,
			},
			Variables:         projectVars(),
			Dependencies:      []string{"dotnet-sdk-8.0"},
			SetupInstructions: "Install the .NET 8 SDK, then run `dotnet run`.",
		},
		{
			ID:            "dotnet-webapi",
			Name:          "ASP.NET Core Web API",
			Description:   "Minimal ASP.NET Core Web API with a controller and Swagger",
			Language:      domain.LangDotnet,
			Type:          "web-api",
			Tags:          []string{"csharp", "aspnetcore", "rest"},
			Complexity:    domain.ComplexityIntermediate,
			EstimatedTime: "5 minutes",
			Files: map[string]string{
				"README.md": readmeBody + `
## Run

` + "```" + `
dotnet run
open http://localhost:5000/swagger
` + "```" + `
`,
				".gitignore": dotnetGitignore,
				"WebApi.csproj": `<Project Sdk="Microsoft.NET.Sdk.Web">

  <PropertyGroup>
    <TargetFramework>net8.0</TargetFramework>
    <ImplicitUsings>enable</ImplicitUsings>
    <Nullable>enable</Nullable>
    <AssemblyName>{{project_name}}</AssemblyName>
    <Description>{{project_description}}</Description>
  </PropertyGroup>

  <ItemGroup>
    <PackageReference Include="Swashbuckle.AspNetCore" Version="6.5.0" />
  </ItemGroup>

</Project>
`,
				"Program.cs": `var builder = WebApplication.CreateBuilder(args);

builder.Services.AddControllers();
builder.Services.AddEndpointsApiExplorer();
builder.Services.AddSwaggerGen();

var app = builder.Build();

app.UseSwagger();
app.UseSwaggerUI();
app.MapControllers();

app.Run();
`,
				"Controllers/InfoController.cs": `using Microsoft.AspNetCore.Mvc;

namespace WebApi.Controllers;

[ApiController]
[Route("api/[controller]")]
public class InfoController : ControllerBase
{
    [HttpGet]
    public IActionResult Get() => Ok(new
    {
        project = "{{project_name}}",
        description = "{{project_description}}"
    });
}
`,
				"appsettings.json": `{
  "Logging": {
    "LogLevel": {
      "Default": "Information",
      "Microsoft.AspNetCore": "Warning"
    }
  },
  "AllowedHosts": "*"
}
`,
			},
			Variables:         projectVars(),
			Dependencies:      []string{"dotnet-sdk-8.0", "Swashbuckle.AspNetCore"},
			SetupInstructions: "Install the .NET 8 SDK, then run `dotnet run` and browse to /swagger.",
		},
	}
}
