package prompts

import "frontgen_server/internal/framework"

// Each framework gets its own instruction block. The blocks share one
// convention the parser depends on: every file is emitted under a
// `### FILE: <path>` header followed by a fenced code block.

const generalInstructions = `You are a front-end site generator AI.

A user wants a website built with %s based on the following requirement:

---
"%s"
---

General rules, for every framework:

1. **Responsive Design**: the layout must adapt to mobile, tablet and desktop.
2. **Navigation**: a clean navigation menu reachable from every page.
3. **UI Components**: include the essentials the requirement implies (hero
   section, cards, contact form, footer) in a modular structure.
4. **Accessibility**: semantic HTML, ARIA attributes, keyboard navigability.
5. **SEO**: meta tags, proper heading hierarchy, meaningful alt text.
6. **Styling**: apply this style and theme consistently: %s
7. **Code Organization**: clean, modular code, separated into the files
   listed below for the chosen framework.
`

const outputInstructions = `
Emit every file under a header of the exact form:

### FILE: <relative/path>

followed by a single fenced code block containing only that file's
content. Respond with only the code files in this format. No explanations,
no notes, no text outside the file blocks.`

var frameworkInstructions = map[framework.Framework]string{
	framework.HTMLCSSJS: `
Framework-specific rules for HTML/CSS/JavaScript:
- Use vanilla HTML, CSS and JavaScript with a mobile-first approach.
- Separate concerns: markup in index.html, styles in style.css, behavior
  in script.js.
- Expected files: index.html, style.css, script.js.`,

	framework.React: `
Framework-specific rules for React:
- Use functional components with hooks (useState, useEffect).
- Create a modular component per part of the site (Navbar, Hero, Footer).
- Use React Router if the site needs more than one page.
- Expected files: public/index.html, src/index.js, src/App.js,
  src/components/Navbar.js, src/styles.css, plus one component file per
  additional section.`,

	framework.Angular: `
Framework-specific rules for Angular:
- Organize the application into Angular components and modules, with
  routing via the Angular Router.
- Use TypeScript, dependency injection and a service-based architecture.
- Expected files: src/app/app.component.html, src/app/app.component.ts,
  src/app/app.module.ts, src/app/app-routing.module.ts, src/styles.css,
  plus one component per additional section.`,
}
