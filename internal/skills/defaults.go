package skills

// defaultAliases maps lowercased raw tokens to canonical skill names.
// Many-to-one: every variant of a technology collapses to a single
// representative so resume and job skills compare consistently.
var defaultAliases = map[string]string{
	// Web basics
	"html5":  "html",
	"html 5": "html",
	"css3":   "css",
	"css 3":  "css",
	"scss":   "css",
	"sass":   "css",
	"less":   "css",
	// JavaScript and variants
	"java script": "javascript",
	"js":          "javascript",
	"es6":         "javascript",
	"es2015":      "javascript",
	"ts":          "typescript",
	// Frontend frameworks
	"reactjs":    "react",
	"react.js":   "react",
	"nextjs":     "next.js",
	"vuejs":      "vue",
	"vue.js":     "vue",
	"angularjs":  "angular",
	"angular.js": "angular",
	"sveltejs":   "svelte",
	"svelte.js":  "svelte",
	// Backend frameworks
	"nodejs":     "node.js",
	"node":       "node.js",
	"expressjs":  "express",
	"express.js": "express",
	"springboot": "spring boot",
	// APIs
	"restapi":     "rest api",
	"restfulapi":  "rest api",
	"restful api": "rest api",
	"restful":     "rest api",
	// Databases
	"mongo db": "mongodb",
	"mongo":    "mongodb",
	"postgres": "postgresql",
	"postgre":  "postgresql",
	// Cloud & DevOps
	"amazon web services": "aws",
	"google cloud":        "gcp",
	"k8s":                 "kubernetes",
	"ci/cd":               "cicd",
	// Programming languages
	"py":          "python",
	"cpp":         "c++",
	"c sharp":     "c#",
	"golang":      "go",
	"objective c": "objective-c",
	// Data science & ML
	"sklearn":          "scikit-learn",
	"torch":            "pytorch",
	"ml":               "machine learning",
	"dl":               "deep learning",
	// Tools
	"github":    "git",
	"gitlab":    "git",
	"bitbucket": "git",
	// UI frameworks
	"mui":          "material ui",
	"tailwindcss":  "tailwind css",
	"antd":         "ant design",
	"threejs":      "three.js",
	"motion":       "framer motion",
	// Other
	"object oriented programming": "oop",
}

// defaultVocabulary is the known-skill list used for substring and
// fuzzy skill detection during extraction.
var defaultVocabulary = []string{
	// Programming languages
	"python", "java", "javascript", "js", "typescript", "ts", "c++", "cpp", "c", "c#", "c sharp", "r", "bash",
	// Web basics and variants
	"html", "html5", "html 5", "css", "css3", "css 3", "scss", "sass", "less",
	// Frontend frameworks
	"react", "reactjs", "react.js", "next.js", "nextjs", "vue", "vuejs", "vue.js", "angular", "angularjs", "angular.js", "svelte", "sveltejs", "svelte.js",
	"tailwind css", "tailwindcss", "redux", "bootstrap", "vite", "material ui", "mui", "ant design", "antd", "framer motion", "motion", "three.js", "threejs",
	// Backend frameworks
	"node.js", "nodejs", "node", "fastapi", "flask", "django", "express", "expressjs", "express.js", "spring boot", "springboot",
	// APIs
	"rest api", "restapi", "restful api", "restfulapi", "graphql", "soap",
	// Databases
	"sql", "nosql", "mongodb", "mongo db", "mongo", "postgresql", "postgres", "postgre", "mysql", "sqlite", "firebase", "redis", "dynamodb", "cassandra",
	// Data science & ML
	"scikit-learn", "sklearn", "pandas", "numpy", "xgboost", "shap", "opencv", "nltk", "spacy", "matplotlib", "seaborn", "tensorflow", "keras", "pytorch", "torch", "ml", "machine learning", "deep learning", "dl", "nlp", "computer vision",
	// Cloud & DevOps
	"aws", "amazon web services", "gcp", "google cloud", "azure", "docker", "kubernetes", "k8s", "ci/cd", "cicd", "jenkins", "github actions", "gitlab ci",
	// Tools
	"git", "github", "gitlab", "bitbucket", "jira", "figma", "adobe xd", "storybook", "webpack", "babel", "parcel", "eslint", "prettier",
	// Product / design / management
	"user research", "wireframing", "prototyping", "design systems", "usability testing", "product management", "agile", "scrum", "kanban",
	// Security
	"penetration testing", "firewalls", "siem",
	// Analytics / BI
	"powerbi", "power bi", "restful apis",
	// Mobile
	"android sdk", "flutter", "dart", "push notifications",
	// Other
	"streamlit", "hugging face", "langchain", "rag", "transformers", "gemini pro", "vertex ai", "openai api",
	"heroku", "vercel", "netlify", "oop", "object oriented programming", "trello", "notion", "slack",
}

// DefaultTable returns the process-wide skill table. Each call builds a
// fresh copy; callers share one instance by construction, not through
// mutable global state.
func DefaultTable() *Table {
	return NewTable(defaultAliases, defaultVocabulary)
}
