package framework

import (
	"fmt"
	"strings"
)

// Framework selects which front-end stack the model is asked to produce.
// It is a closed set: every component looks its behavior up in the
// per-framework table below instead of string-matching framework names
// inline.
type Framework string

const (
	HTMLCSSJS Framework = "html_css_js"
	React     Framework = "react"
	Angular   Framework = "angular"
)

// All returns the supported frameworks in display order.
func All() []Framework {
	return []Framework{HTMLCSSJS, React, Angular}
}

// Parse maps user-facing framework names (including the labels the
// original UI dropdown used, e.g. "HTML/CSS/JavaScript") onto a Framework.
func Parse(s string) (Framework, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "html_css_js", "html/css/javascript", "html/css/js", "html", "static":
		return HTMLCSSJS, nil
	case "react":
		return React, nil
	case "angular":
		return Angular, nil
	default:
		return "", fmt.Errorf("unsupported framework %q (expected one of: html_css_js, react, angular)", s)
	}
}

// Valid reports whether f is one of the supported variants.
func (f Framework) Valid() bool {
	switch f {
	case HTMLCSSJS, React, Angular:
		return true
	}
	return false
}

// Spec describes the per-framework behavior shared by the prompt builder,
// the response parser and the packager.
type Spec struct {
	DisplayName string
	// Language used for syntax highlighting when the completion arrives
	// as a single undifferentiated block.
	Language string
	// ExpectedFiles are the paths the prompt instructs the model to emit.
	ExpectedFiles []string
	// RequiredFiles are backfilled with a placeholder when the model
	// omits them, so a download never breaks on a missing scaffold file.
	RequiredFiles []string
	// Manifests maps manifest paths to their fallback content. Unlike
	// RequiredFiles these get a real template, not a placeholder.
	Manifests map[string]string
	// InstallCmd and RunCmd feed the generated README.
	InstallCmd string
	RunCmd     string
}

var specs = map[Framework]Spec{
	HTMLCSSJS: {
		DisplayName:   "HTML/CSS/JavaScript",
		Language:      "html",
		ExpectedFiles: []string{"index.html", "style.css", "script.js"},
		RequiredFiles: []string{"index.html", "style.css", "script.js"},
		Manifests:     map[string]string{},
		InstallCmd:    "none needed",
		RunCmd:        "open `index.html` in your preferred web browser",
	},
	React: {
		DisplayName: "React",
		Language:    "javascript",
		ExpectedFiles: []string{
			"public/index.html",
			"src/index.js",
			"src/App.js",
			"src/components/Navbar.js",
			"src/styles.css",
		},
		RequiredFiles: []string{
			"public/index.html",
			"src/index.js",
			"src/App.js",
		},
		Manifests: map[string]string{
			"package.json": reactManifest,
		},
		InstallCmd: "npm install",
		RunCmd:     "npm start",
	},
	Angular: {
		DisplayName: "Angular",
		Language:    "typescript",
		ExpectedFiles: []string{
			"src/app/app.component.html",
			"src/app/app.component.ts",
			"src/app/app.module.ts",
			"src/app/app-routing.module.ts",
			"src/styles.css",
		},
		RequiredFiles: []string{
			"src/app/app.component.html",
			"src/app/app.component.ts",
			"src/app/app.module.ts",
		},
		Manifests: map[string]string{
			"package.json": angularManifest,
			"angular.json": angularWorkspace,
		},
		InstallCmd: "npm install",
		RunCmd:     "ng serve",
	},
}

// Spec returns the behavior table entry for f. Callers are expected to
// validate f first; an unknown framework returns the zero Spec.
func (f Framework) Spec() Spec {
	return specs[f]
}

// ArchiveName is the download filename for a generated project,
// following the `<framework>_code_base.zip` convention.
func (f Framework) ArchiveName() string {
	return string(f) + "_code_base.zip"
}

const reactManifest = `{
  "name": "generated-react-app",
  "version": "0.1.0",
  "private": true,
  "dependencies": {
    "react": "^18.2.0",
    "react-dom": "^18.2.0",
    "react-router-dom": "^6.22.0",
    "react-scripts": "5.0.1"
  },
  "scripts": {
    "start": "react-scripts start",
    "build": "react-scripts build",
    "test": "react-scripts test"
  },
  "browserslist": {
    "production": [">0.2%", "not dead", "not op_mini all"],
    "development": ["last 1 chrome version", "last 1 firefox version", "last 1 safari version"]
  }
}
`

const angularManifest = `{
  "name": "generated-angular-app",
  "version": "0.1.0",
  "private": true,
  "scripts": {
    "ng": "ng",
    "start": "ng serve",
    "build": "ng build"
  },
  "dependencies": {
    "@angular/common": "^17.0.0",
    "@angular/compiler": "^17.0.0",
    "@angular/core": "^17.0.0",
    "@angular/forms": "^17.0.0",
    "@angular/platform-browser": "^17.0.0",
    "@angular/platform-browser-dynamic": "^17.0.0",
    "@angular/router": "^17.0.0",
    "rxjs": "~7.8.0",
    "tslib": "^2.3.0",
    "zone.js": "~0.14.0"
  },
  "devDependencies": {
    "@angular-devkit/build-angular": "^17.0.0",
    "@angular/cli": "^17.0.0",
    "typescript": "~5.2.0"
  }
}
`

const angularWorkspace = `{
  "$schema": "./node_modules/@angular/cli/lib/config/schema.json",
  "version": 1,
  "newProjectRoot": "projects",
  "projects": {
    "generated-angular-app": {
      "projectType": "application",
      "root": "",
      "sourceRoot": "src",
      "architect": {
        "build": {
          "builder": "@angular-devkit/build-angular:browser",
          "options": {
            "outputPath": "dist/generated-angular-app",
            "index": "src/index.html",
            "main": "src/main.ts",
            "tsConfig": "tsconfig.json",
            "styles": ["src/styles.css"]
          }
        },
        "serve": {
          "builder": "@angular-devkit/build-angular:dev-server"
        }
      }
    }
  }
}
`
