package catalog

import "github.com/GoSim-25-26J-441/scaffold-forge-backend/internal/templates/domain"

const javaGitignore = `target/
*.class
*.log
.idea/
*.iml
.vscode/
`

func javaTemplates() []*domain.Template {
	return []*domain.Template{
		{
			ID:            "java-hello",
			Name:          "Java Hello World",
			Description:   "Minimal Maven project with a single entry point",
			Language:      domain.LangJava,
			Type:          "console",
			Tags:          []string{"maven", "console", "starter"},
			Complexity:    domain.ComplexityBeginner,
			EstimatedTime: "2 minutes",
			Files: map[string]string{
				"README.md": readmeBody + `
## Build

` + "```" + `
mvn package
java -jar target/{{project_name}}-1.0.0.jar
` + "```" + `
`,
				".gitignore": javaGitignore,
				"pom.xml": `<?xml version="1.0" encoding="UTF-8"?>
<project xmlns="http://maven.apache.org/POM/4.0.0"
         xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance"
         xsi:schemaLocation="http://maven.apache.org/POM/4.0.0 http://maven.apache.org/xsd/maven-4.0.0.xsd">
  <modelVersion>4.0.0</modelVersion>

  <groupId>com.example</groupId>
  <artifactId>{{project_name}}</artifactId>
  <version>1.0.0</version>
  <packaging>jar</packaging>
  <description>{{project_description}}</description>

  <properties>
    <maven.compiler.source>17</maven.compiler.source>
    <maven.compiler.target>17</maven.compiler.target>
    <project.build.sourceEncoding>UTF-8</project.build.sourceEncoding>
  </properties>

  <build>
    <plugins>
      <plugin>
        <groupId>org.apache.maven.plugins</groupId>
        <artifactId>maven-jar-plugin</artifactId>
        <version>3.3.0</version>
        <configuration>
          <archive>
            <manifest>
              <mainClass>com.example.App</mainClass>
            </manifest>
          </archive>
        </configuration>
      </plugin>
    </plugins>
  </build>
</project>
`,
				"src/main/java/com/example/App.java": `package com.example;

/**
 * {{project_description}}
 */
public class App {
    public static void main(String[] args) {
        System.out.println("Hello from {{project_name}}!");
    }
}
`,
			},
			Variables:         projectVars(),
			Dependencies:      []string{"openjdk-17", "maven"},
			SetupInstructions: "Install JDK 17 and Maven, then run `mvn package`.",
		},
		{
			ID:            "java-springboot",
			Name:          "Spring Boot REST API",
			Description:   "Spring Boot web service with a health endpoint",
			Language:      domain.LangJava,
			Type:          "web-api",
			Tags:          []string{"spring", "rest", "maven"},
			Complexity:    domain.ComplexityIntermediate,
			EstimatedTime: "5 minutes",
			Files: map[string]string{
				"README.md": readmeBody + `
## Run

` + "```" + `
mvn spring-boot:run
curl http://localhost:8080/api/hello
` + "```" + `
`,
				".gitignore": javaGitignore,
				"pom.xml": `<?xml version="1.0" encoding="UTF-8"?>
<project xmlns="http://maven.apache.org/POM/4.0.0"
         xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance"
         xsi:schemaLocation="http://maven.apache.org/POM/4.0.0 http://maven.apache.org/xsd/maven-4.0.0.xsd">
  <modelVersion>4.0.0</modelVersion>

  <parent>
    <groupId>org.springframework.boot</groupId>
    <artifactId>spring-boot-starter-parent</artifactId>
    <version>3.2.5</version>
    <relativePath/>
  </parent>

  <groupId>com.example</groupId>
  <artifactId>{{project_name}}</artifactId>
  <version>0.0.1-SNAPSHOT</version>
  <description>{{project_description}}</description>

  <properties>
    <java.version>17</java.version>
  </properties>

  <dependencies>
    <dependency>
      <groupId>org.springframework.boot</groupId>
      <artifactId>spring-boot-starter-web</artifactId>
    </dependency>
    <dependency>
      <groupId>org.springframework.boot</groupId>
      <artifactId>spring-boot-starter-actuator</artifactId>
    </dependency>
    <dependency>
      <groupId>org.springframework.boot</groupId>
      <artifactId>spring-boot-starter-test</artifactId>
      <scope>test</scope>
    </dependency>
  </dependencies>

  <build>
    <plugins>
      <plugin>
        <groupId>org.springframework.boot</groupId>
        <artifactId>spring-boot-maven-plugin</artifactId>
      </plugin>
    </plugins>
  </build>
</project>
`,
				"src/main/java/com/example/Application.java": `package com.example;

import org.springframework.boot.SpringApplication;
import org.springframework.boot.autoconfigure.SpringBootApplication;

@SpringBootApplication
public class Application {
    public static void main(String[] args) {
        SpringApplication.run(Application.class, args);
    }
}
`,
				"src/main/java/com/example/HelloController.java": `package com.example;

import java.util.Map;

import org.springframework.web.bind.annotation.GetMapping;
import org.springframework.web.bind.annotation.RequestMapping;
import org.springframework.web.bind.annotation.RestController;

@RestController
@RequestMapping("/api")
public class HelloController {

    @GetMapping("/hello")
    public Map<String, String> hello() {
        return Map.of(
            "project", "{{project_name}}",
            "description", "{{project_description}}"
        );
    }
}
`,
				"src/main/resources/application.properties": `spring.application.name={{project_name}}
server.port=8080
management.endpoints.web.exposure.include=health,info
`,
			},
			Variables:         projectVars(),
			Dependencies:      []string{"openjdk-17", "maven", "spring-boot-starter-web", "spring-boot-starter-actuator"},
			SetupInstructions: "Install JDK 17 and Maven, then run `mvn spring-boot:run`.",
		},
	}
}
