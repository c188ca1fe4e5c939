package config

import (
	"context"
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/indaco/npmhandler/internal/core"
	"github.com/indaco/npmhandler/internal/npm"
)

// Validation categories.
const (
	CategoryDescriptor = "Descriptor"
	CategoryExclusion  = "Exclusion"
	CategoryInstaller  = "Installer"
)

// ValidationResult represents the result of a validation check.
type ValidationResult struct {
	// Category is the validation category (e.g., "Descriptor", "Installer").
	Category string

	// Passed indicates if the check passed.
	Passed bool

	// Message provides details about the validation result.
	Message string

	// Warning indicates if this is a warning rather than an error.
	Warning bool

	// Suggestion explains how to fix a failed check; empty when there is nothing to add.
	Suggestion string
}

// Validator checks a project's npm-handler setup without installing anything.
type Validator struct {
	fs          core.FileSystem
	root        string
	explicit    string
	lookPath    npm.LookPathFunc
	validations []ValidationResult
}

// NewValidator creates a validator for the project at root. explicit is the
// descriptor chosen by the user, if any; a nil lookPath selects exec.LookPath.
func NewValidator(fsys core.FileSystem, root, explicit string, lookPath npm.LookPathFunc) *Validator {
	return &Validator{
		fs:          fsys,
		root:        root,
		explicit:    explicit,
		lookPath:    lookPath,
		validations: make([]ValidationResult, 0),
	}
}

// Validate runs all validation checks and returns the results.
// Only a cancelled context is reported as an error.
func (v *Validator) Validate(ctx context.Context) ([]ValidationResult, error) {
	v.validations = make([]ValidationResult, 0)

	desc := v.validateDescriptor(ctx)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	opts := Default()
	if desc != nil {
		opts = FromExtra(desc.Extra)
	}

	v.validateExclusions(ctx, opts.ExcludePackages)
	v.validateInstaller(ctx, opts.NpmPath)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return v.validations, nil
}

func (v *Validator) addValidation(category string, passed bool, message string, warning bool) {
	v.validations = append(v.validations, ValidationResult{
		Category: category,
		Passed:   passed,
		Message:  message,
		Warning:  warning,
	})
}

func (v *Validator) validateDescriptor(ctx context.Context) *Descriptor {
	desc, err := LoadExtraFn(ctx, v.fs, v.root, v.explicit)
	if err != nil {
		var parseErr *DescriptorParseError
		if errors.As(err, &parseErr) {
			v.addValidation(CategoryDescriptor, false, parseErr.Error(), false)
		} else {
			v.addValidation(CategoryDescriptor, false, err.Error(), false)
		}
		return nil
	}

	if !desc.Found() {
		v.addValidation(CategoryDescriptor, true, "No descriptor found, using defaults", false)
		return desc
	}

	v.addValidation(CategoryDescriptor, true, fmt.Sprintf("%s is valid", filepath.Base(desc.Path)), false)
	return desc
}

func (v *Validator) validateExclusions(ctx context.Context, excludes []string) {
	for _, e := range excludes {
		if filepath.IsAbs(e) || strings.HasPrefix(e, "/") {
			v.addValidation(CategoryExclusion, false,
				fmt.Sprintf("'%s' must be relative to the project root", e), false)
			continue
		}

		rel := path.Clean(filepath.ToSlash(e))
		if rel == ".." || strings.HasPrefix(rel, "../") {
			v.addValidation(CategoryExclusion, false,
				fmt.Sprintf("'%s' points outside the project root", e), false)
			continue
		}

		if rel == "." {
			v.addValidation(CategoryExclusion, true,
				fmt.Sprintf("'%s' excludes the whole project", e), true)
			continue
		}

		info, err := v.fs.Stat(ctx, filepath.Join(v.root, filepath.FromSlash(rel)))
		switch {
		case err != nil:
			v.addValidation(CategoryExclusion, true,
				fmt.Sprintf("'%s' does not exist", e), true)
		case !info.IsDir():
			v.addValidation(CategoryExclusion, true,
				fmt.Sprintf("'%s' is not a directory", e), true)
		default:
			v.addValidation(CategoryExclusion, true,
				fmt.Sprintf("'%s' is excluded", e), false)
		}
	}
}

func (v *Validator) validateInstaller(ctx context.Context, name string) {
	exe, err := npm.Resolve(ctx, v.fs, name, v.root, v.lookPath)
	if err != nil {
		result := ValidationResult{Category: CategoryInstaller, Message: err.Error()}
		var notFound *npm.ExecutableNotFoundError
		if errors.As(err, &notFound) {
			result.Suggestion = notFound.Suggestion()
		}
		v.validations = append(v.validations, result)
		return
	}
	v.addValidation(CategoryInstaller, true,
		fmt.Sprintf("'%s' resolved to %s (%s)", name, exe, npm.Classify(name)), false)
}

// HasErrors returns true if any validation failed.
func HasErrors(results []ValidationResult) bool {
	return ErrorCount(results) > 0
}

// ErrorCount returns the number of failed validations.
func ErrorCount(results []ValidationResult) int {
	count := 0
	for _, r := range results {
		if !r.Passed && !r.Warning {
			count++
		}
	}
	return count
}

// WarningCount returns the number of warnings.
func WarningCount(results []ValidationResult) int {
	count := 0
	for _, r := range results {
		if r.Warning {
			count++
		}
	}
	return count
}
