// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package codegen

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"text/template"

	"github.com/xeipuuv/gojsonschema"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Config holds the loaded configuration
type Config struct {
	Methods  []MethodDefinition `json:"methods"`
	Messages []string           `json:"messages"`
}

// MethodDefinition represents one registry entry to be generated
type MethodDefinition struct {
	Name   string `json:"name"`
	Kind   string `json:"kind"`   // request, notification, either
	Params string `json:"params"` // payload spec, see PayloadExpr
	Result string `json:"result,omitempty"`
	Doc    string `json:"doc"`
}

const codecImport = "github.com/H0llyW00dzZ/lsp-message-codec/src/lsp/codec"

// getCodegenDir returns the absolute path to the codegen directory
func getCodegenDir() string {
	_, currentFile, _, _ := runtime.Caller(0)
	return filepath.Dir(filepath.Dir(currentFile)) // Go up from internal/ to codegen/
}

// getTemplatePath returns the path to a template file
func getTemplatePath(templateName string) string {
	return filepath.Join(getCodegenDir(), "templates", templateName)
}

// getOutputPath returns the path to an output file
func getOutputPath(outputName string) string {
	return filepath.Join(getCodegenDir(), "..", "..", "src", "lsp", "protocol", outputName)
}

// loadConfig loads and validates config/methods.json
func loadConfig() (*Config, error) {
	configDir := filepath.Join(getCodegenDir(), "config")

	schemaPath := filepath.Join(configDir, "methods.schema.json")
	schemaData, err := os.ReadFile(schemaPath)
	if err != nil {
		return nil, fmt.Errorf("reading schema from %s: %w", schemaPath, err)
	}

	methodsPath := filepath.Join(configDir, "methods.json")
	methodsData, err := os.ReadFile(methodsPath)
	if err != nil {
		return nil, fmt.Errorf("reading methods config from %s: %w", methodsPath, err)
	}

	return parseConfig(schemaData, methodsData)
}

// parseConfig checks data against the JSON schema, decodes it and runs the
// semantic checks the schema cannot express.
func parseConfig(schemaData, data []byte) (*Config, error) {
	if err := validateAgainstSchema(schemaData, data); err != nil {
		return nil, err
	}

	config := &Config{}
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parsing methods config: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return config, nil
}

// validateAgainstSchema validates the raw configuration with gojsonschema
func validateAgainstSchema(schemaData, data []byte) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schemaData),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return fmt.Errorf("loading methods config: %w", err)
	}
	if result.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("methods config does not match schema: %s", strings.Join(msgs, "; "))
}

// validateConfig validates the loaded configuration
func validateConfig(config *Config) error {
	messages := make(map[string]bool, len(config.Messages))
	for _, m := range config.Messages {
		messages[m] = true
	}

	names := make(map[string]bool)
	consts := make(map[string]bool)
	for i, m := range config.Methods {
		if names[m.Name] {
			return fmt.Errorf("method %d: duplicate name '%s'", i, m.Name)
		}
		names[m.Name] = true

		c := ConstName(m.Name)
		if consts[c] {
			return fmt.Errorf("method %d: constant %s collides with an earlier method", i, c)
		}
		consts[c] = true

		switch {
		case m.Kind == "notification" && m.Result != "":
			return fmt.Errorf("method %d (%s): notifications have no result", i, m.Name)
		case m.Kind != "notification" && m.Result == "":
			return fmt.Errorf("method %d (%s): %s methods need a result", i, m.Name, m.Kind)
		}

		for _, spec := range []string{m.Params, m.Result} {
			if t := payloadType(spec); t != "" && !messages[t] {
				return fmt.Errorf("method %d (%s): unknown message type '%s'", i, m.Name, t)
			}
		}
	}
	return nil
}

// ConstName derives the Go constant of a method name:
// "textDocument/didOpen" becomes MethodTextDocumentDidOpen and
// "$/cancelRequest" becomes MethodCancelRequest.
func ConstName(method string) string {
	caser := cases.Title(language.Und, cases.NoLower)
	var b strings.Builder
	b.WriteString("Method")
	for part := range strings.SplitSeq(method, "/") {
		part = strings.TrimPrefix(part, "$")
		if part == "" {
			continue
		}
		b.WriteString(caser.String(part))
	}
	return b.String()
}

// SchemaVar returns the schema variable backing a message type.
func SchemaVar(message string) string {
	return strings.ToLower(message[:1]) + message[1:] + "Schema"
}

// payloadType returns the message type a payload spec refers to, if any.
func payloadType(spec string) string {
	t := strings.TrimPrefix(strings.TrimPrefix(spec, "?"), "[]")
	if t == "" || t == "null" || t == "any" {
		return ""
	}
	return t
}

// PayloadExpr translates a payload spec into the Go expression building it.
//
// Specs: "" (none), "null", "[]any", "T", "[]T", and any of the last three
// prefixed with "?" to also allow an explicit null.
func PayloadExpr(spec string) string {
	if spec == "" {
		return "Payload{}"
	}
	if spec == "null" {
		return "nullPayload()"
	}

	nullable := strings.HasPrefix(spec, "?")
	spec = strings.TrimPrefix(spec, "?")

	var c string
	switch {
	case spec == "[]any":
		c = "codec.RawArray"
	case strings.HasPrefix(spec, "[]"):
		c = fmt.Sprintf("codec.Array(codec.Object(%s))", SchemaVar(strings.TrimPrefix(spec, "[]")))
	default:
		c = fmt.Sprintf("codec.Object(%s)", SchemaVar(spec))
	}

	expr := fmt.Sprintf("payloadOf(%s)", c)
	if nullable {
		expr += ".orNull()"
	}
	return expr
}

// kindConst maps a config kind to its MethodKind constant.
func kindConst(kind string) string {
	switch kind {
	case "request":
		return "KindRequest"
	case "notification":
		return "KindNotification"
	}
	return "KindEither"
}

var funcs = template.FuncMap{
	"constName":   ConstName,
	"schemaVar":   SchemaVar,
	"payloadExpr": PayloadExpr,
	"kindConst":   kindConst,
}

// GenerateMethods generates methods_gen.go for the protocol package
func GenerateMethods() error {
	config, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	return generateFile(getTemplatePath("methods.go.tmpl"), getOutputPath("methods_gen.go"), config, codecImport)
}

// GenerateMessages generates messages_gen.go for the protocol package
func GenerateMessages() error {
	config, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	return generateFile(getTemplatePath("messages.go.tmpl"), getOutputPath("messages_gen.go"), config)
}

// generateFile generates a file using a template
func generateFile(templatePath, outputPath string, config *Config, imports ...string) error {
	code, err := render(templatePath, config, imports...)
	if err != nil {
		return err
	}
	return writeGeneratedFile(outputPath, code)
}

// render executes a template into formatted Go source
func render(templatePath string, config *Config, imports ...string) ([]byte, error) {
	tmpl, err := template.New(filepath.Base(templatePath)).Funcs(funcs).ParseFiles(templatePath)
	if err != nil {
		return nil, fmt.Errorf("parsing template from %s: %w", templatePath, err)
	}

	var code bytes.Buffer

	// Header
	writeHeader(&code)

	// Package and imports
	code.WriteString("package protocol\n\n")
	if len(imports) > 0 {
		code.WriteString("import (\n")
		for _, imp := range imports {
			fmt.Fprintf(&code, "\t%q\n", imp)
		}
		code.WriteString(")\n\n")
	}

	// Execute template
	if err := tmpl.Execute(&code, config); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	// Format the generated code
	formatted, err := format.Source(code.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting code: %w", err)
	}
	return formatted, nil
}

func writeHeader(code *bytes.Buffer) {
	code.WriteString("// Copyright (c) 2026 H0llyW00dzZ All rights reserved.\n")
	code.WriteString("//\n")
	code.WriteString("// By accessing or using this software, you agree to be bound by the terms\n")
	code.WriteString("// of the License Agreement, which you can find at LICENSE files.\n\n")
	code.WriteString("// Code generated by go generate; DO NOT EDIT.\n")
	code.WriteString("// This file is generated from tools/codegen/internal/codegen.go\n\n")
}

func writeGeneratedFile(filename string, content []byte) error {
	// Write to the generated file
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	_, err = writer.Write(content)
	if err != nil {
		return fmt.Errorf("writing to file: %w", err)
	}

	if err := writer.Flush(); err != nil {
		return fmt.Errorf("flushing file: %w", err)
	}

	fmt.Printf("Generated %s successfully\n", filename)
	return nil
}
