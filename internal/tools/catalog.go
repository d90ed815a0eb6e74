package tools

import (
	"encoding/json"

	"github.com/launchts/launchts/internal/defs"
	"github.com/launchts/launchts/internal/manifest"
)

const eslintFlatConfig = `import js from '@eslint/js';
import tseslint from 'typescript-eslint';
import globals from 'globals';

export default tseslint.config(
  js.configs.recommended,
  ...tseslint.configs.recommended,
  {
    languageOptions: {
      ecmaVersion: 'latest',
      sourceType: 'module',
      globals: {
        ...globals.node,
      },
    },
    rules: {
      'no-unused-vars': 'off',
      '@typescript-eslint/no-unused-vars': [
        'warn',
        {
          argsIgnorePattern: '^_',
          varsIgnorePattern: '^_',
          caughtErrorsIgnorePattern: '^_',
        },
      ],
      '@typescript-eslint/explicit-module-boundary-types': 'off',
    },
  },
);
`

const preCommitHook = "#!/bin/sh\n. \"$(dirname \"$0\")/_/husky.sh\"\nnpx lint-staged\n"

// prettierConfig is the .prettierrc document; field order is the file's key order.
type prettierConfig struct {
	Semi          bool   `json:"semi"`
	SingleQuote   bool   `json:"singleQuote"`
	TrailingComma string `json:"trailingComma"`
	PrintWidth    int    `json:"printWidth"`
}

func prettierRC() []byte {
	data, err := json.MarshalIndent(prettierConfig{
		Semi:          true,
		SingleQuote:   true,
		TrailingComma: "all",
		PrintWidth:    80,
	}, "", "  ")
	if err != nil {
		panic("tools: prettier config: " + err.Error())
	}
	return append(data, '\n')
}

func lintStaged() *manifest.OrderedMap[[]string] {
	m := manifest.NewOrderedMap[[]string]()
	m.Set("*.ts", []string{"eslint --fix", "prettier --write"})
	m.Set("*.json", []string{"prettier --write"})
	return m
}

// Default returns the built-in registry.
func Default() *Registry {
	return NewRegistry(
		Descriptor{
			ID:     Reload,
			Name:   "Nodemon",
			Flag:   "nodemon",
			Prompt: "Add nodemon dev script?",
			Stack:  "Auto-reload during development",
			Deps:   []string{"nodemon", "ts-node"},
			Scripts: []Script{{
				Name:    "dev",
				Command: `nodemon --watch src -e ts --exec "ts-node src/index.ts"`,
				Summary: "Start development server with auto-reload",
				Detail:  "Starts the development server with auto-reload on file changes",
			}},
		},
		Descriptor{
			ID:     Lint,
			Name:   "ESLint",
			Flag:   "eslint",
			Prompt: "Add ESLint?",
			Stack:  "Code quality and consistency with TypeScript support",
			Deps:   []string{"eslint", "@eslint/js", "typescript-eslint", "globals", "eslint-config-prettier"},
			Scripts: []Script{{
				Name:    "lint",
				Command: "eslint .",
				Summary: "Run ESLint",
				Detail:  "Checks code quality with ESLint",
			}},
			Files:     []File{{Path: defs.ESLintConfig, Content: []byte(eslintFlatConfig)}},
			Structure: &StructureEntry{Path: defs.ESLintConfig, Comment: "ESLint configuration (flat config)"},
		},
		Descriptor{
			ID:     Format,
			Name:   "Prettier",
			Flag:   "prettier",
			Prompt: "Add Prettier?",
			Stack:  "Code formatting",
			Deps:   []string{"prettier"},
			Scripts: []Script{{
				Name:    "format",
				Command: "prettier --write .",
				Summary: "Format code with Prettier",
				Detail:  "Formats all files with Prettier",
			}},
			Files:     []File{{Path: defs.PrettierRC, Content: prettierRC()}},
			Structure: &StructureEntry{Path: defs.PrettierRC, Comment: "Prettier configuration"},
		},
		Descriptor{
			ID:     Hooks,
			Name:   "Husky + lint-staged",
			Flag:   "husky",
			Prompt: "Add Husky (pre-commit hooks)?",
			Stack:  "Pre-commit hooks for code quality",
			Deps:   []string{"husky", "lint-staged"},
			Scripts: []Script{{
				Name:      "prepare",
				Command:   "husky install",
				Lifecycle: true,
			}},
			Files: []File{{
				Path:    defs.HuskyDir + "/" + defs.PreCommitHook,
				Content: []byte(preCommitHook),
				Mode:    defs.ExecPerm,
			}},
			Sections: []Section{{Key: "lint-staged", Value: lintStaged(), Patterns: true}},
			Closing:  &StructureEntry{Path: defs.HuskyDir + "/", Comment: "Git hooks"},
			Readme: &ReadmeSection{
				Title: "Git Hooks",
				Body: "This project uses Husky to run quality checks before commits:\n\n" +
					"- **Pre-commit**: Automatically runs ESLint and Prettier on staged files\n",
			},
			Activation: &Activation{
				Args:     []string{"husky", "install"},
				HookFile: defs.HuskyDir + "/" + defs.PreCommitHook,
				Fallback: []string{"husky", "add", defs.HuskyDir + "/" + defs.PreCommitHook, "npx lint-staged"},
			},
		},
	)
}
