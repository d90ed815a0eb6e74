package defs

// File names written into a generated project.
const (
	// PackageJSON is the dependency and script manifest.
	PackageJSON = "package.json"

	// TSConfigJSON is the TypeScript compiler configuration.
	TSConfigJSON = "tsconfig.json"

	// ReadmeMD is the generated project documentation.
	ReadmeMD = "README.md"

	// EntryTS is the entry stub under SrcDir.
	EntryTS = "index.ts"

	// GitIgnore is the version-control ignore file.
	GitIgnore = ".gitignore"

	// ESLintConfig is the ESLint flat config file.
	ESLintConfig = "eslint.config.js"

	// PrettierRC is the Prettier configuration file.
	PrettierRC = ".prettierrc"

	// PreCommitHook is the hook file name inside HuskyDir.
	PreCommitHook = "pre-commit"
)

// Lock files used to infer the ambient package manager, in precedence order.
const (
	PNPMLock = "pnpm-lock.yaml"
	YarnLock = "yarn.lock"
	NPMLock  = "package-lock.json"
)
