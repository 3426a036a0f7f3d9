package template

import (
	"fmt"
	"regexp"
	"strings"
)

// Engine interpolates {{ var }} placeholders in scenario values.
//
// Values may be strings, maps or slices; maps and slices are walked
// recursively and rebuilt, the input is never mutated. A placeholder
// whose variable is absent from the context fails the whole
// interpolation, listing every missing variable.
type Engine struct {
	// Matches {{ variableName }} and {{ .variableName }}, with or
	// without inner spaces.
	pattern *regexp.Regexp
}

// New creates a template engine.
func New() *Engine {
	return &Engine{
		pattern: regexp.MustCompile(`\{\{\s*\.?([a-zA-Z_][a-zA-Z0-9_]*)\s*\}\}`),
	}
}

// Replace substitutes all placeholders in value with values from the
// context.
func (e *Engine) Replace(value interface{}, context map[string]interface{}) (interface{}, error) {
	switch v := value.(type) {
	case string:
		return e.replaceString(v, context)
	case map[string]interface{}:
		result := make(map[string]interface{}, len(v))
		for key, val := range v {
			replaced, err := e.Replace(val, context)
			if err != nil {
				return nil, fmt.Errorf("error in key '%s': %w", key, err)
			}
			result[key] = replaced
		}
		return result, nil
	case []interface{}:
		result := make([]interface{}, len(v))
		for i, val := range v {
			replaced, err := e.Replace(val, context)
			if err != nil {
				return nil, fmt.Errorf("error at index %d: %w", i, err)
			}
			result[i] = replaced
		}
		return result, nil
	default:
		// Non-templatable types pass through unchanged.
		return value, nil
	}
}

// ReplaceString is Replace for a plain string value, such as a resource
// path.
func (e *Engine) ReplaceString(value string, context map[string]interface{}) (string, error) {
	return e.replaceString(value, context)
}

func (e *Engine) replaceString(value string, context map[string]interface{}) (string, error) {
	var missing []string
	result := e.pattern.ReplaceAllStringFunc(value, func(match string) string {
		name := e.pattern.FindStringSubmatch(match)[1]
		replacement, exists := context[name]
		if !exists {
			missing = append(missing, name)
			return match
		}
		return stringify(replacement)
	})

	if len(missing) > 0 {
		return "", fmt.Errorf("missing template variables: %s", strings.Join(missing, ", "))
	}
	return result, nil
}

func stringify(value interface{}) string {
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", value)
}

// ExtractVariables returns the distinct variable names referenced by
// placeholders anywhere in value.
func (e *Engine) ExtractVariables(value interface{}) []string {
	variables := make(map[string]bool)
	e.extract(value, variables)

	result := make([]string, 0, len(variables))
	for name := range variables {
		result = append(result, name)
	}
	return result
}

func (e *Engine) extract(value interface{}, variables map[string]bool) {
	switch v := value.(type) {
	case string:
		for _, match := range e.pattern.FindAllStringSubmatch(v, -1) {
			variables[match[1]] = true
		}
	case map[string]interface{}:
		for _, val := range v {
			e.extract(val, variables)
		}
	case []interface{}:
		for _, val := range v {
			e.extract(val, variables)
		}
	}
}

// ValidateContext checks that the context covers every variable value
// references, without performing the substitution.
func (e *Engine) ValidateContext(value interface{}, context map[string]interface{}) error {
	var missing []string
	for _, name := range e.ExtractVariables(value) {
		if _, exists := context[name]; !exists {
			missing = append(missing, name)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required variables: %s", strings.Join(missing, ", "))
	}
	return nil
}

// MergeContexts merges contexts left to right; later contexts override
// earlier values.
func MergeContexts(contexts ...map[string]interface{}) map[string]interface{} {
	result := make(map[string]interface{})
	for _, ctx := range contexts {
		for key, value := range ctx {
			result[key] = value
		}
	}
	return result
}
