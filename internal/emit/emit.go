// Package emit generates the typed Go accessor source for a validated
// resource group. It consumes only each item's mode and its parameter or
// variant lists; placeholder positions and specifiers are validation-side
// concerns and never reach the emitter.
package emit

import (
	"fmt"
	"go/format"
	"strconv"
	"strings"

	"resxcheck/internal/model"
	"resxcheck/internal/textutil"
)

// Options controls source generation.
type Options struct {
	// Package is the package clause of the generated file.
	Package string
}

// goTypes maps declared parameter type names (final segment, keyword or
// framework spelling) to the Go type used in generated signatures.
var goTypes = map[string]string{
	"byte": "byte", "Byte": "byte",
	"sbyte": "int8", "SByte": "int8",
	"short": "int16", "Int16": "int16",
	"ushort": "uint16", "UInt16": "uint16",
	"int": "int", "Int32": "int",
	"uint": "uint32", "UInt32": "uint32",
	"long": "int64", "Int64": "int64",
	"ulong": "uint64", "UInt64": "uint64",
	"float": "float32", "Single": "float32",
	"double": "float64", "Double": "float64",
	"decimal": "float64", "Decimal": "float64",
	"BigInteger":     "*big.Int",
	"string":         "string",
	"String":         "string",
	"Guid":           "string",
	"DateTime":       "time.Time",
	"DateTimeOffset": "time.Time",
	"TimeSpan":       "time.Duration",
}

// goKeywords guards generated parameter names against the language.
var goKeywords = map[string]bool{
	"break": true, "case": true, "chan": true, "const": true, "continue": true,
	"default": true, "defer": true, "else": true, "fallthrough": true,
	"for": true, "func": true, "go": true, "goto": true, "if": true,
	"import": true, "interface": true, "map": true, "package": true,
	"range": true, "return": true, "select": true, "struct": true,
	"switch": true, "type": true, "var": true,
}

// Generate produces the gofmt-formatted accessor source for one group.
// Include entries carry no text and are skipped.
func Generate(group string, items []*model.ResourceItem, opts Options) ([]byte, error) {
	pkg := opts.Package
	if pkg == "" {
		pkg = "resources"
	}
	prefix := textutil.ExportName(group)

	var body strings.Builder
	needsFormat := false
	needsTime := false
	needsBig := false

	for _, item := range items {
		if !item.IsString() {
			continue
		}
		fn := prefix + textutil.ExportName(item.Name)
		if fn == prefix {
			return nil, fmt.Errorf("resource %s yields no usable accessor name", item.Name)
		}

		switch item.Mode.Kind() {
		case model.KindEnumeration:
			fmt.Fprintf(&body, "// %sValues lists the allowed values of the %q resource.\n", fn, item.Name)
			fmt.Fprintf(&body, "var %sValues = []string{", fn)
			for i, v := range item.Mode.Variants() {
				if i > 0 {
					body.WriteString(", ")
				}
				body.WriteString(strconv.Quote(v))
			}
			body.WriteString("}\n\n")
			writePlainAccessor(&body, fn, item)

		case model.KindParameterized:
			needsFormat = true
			params := item.Mode.Params()
			fmt.Fprintf(&body, "// %s formats the %q resource.\n", fn, item.Name)
			fmt.Fprintf(&body, "func %s(", fn)
			for i, p := range params {
				if i > 0 {
					body.WriteString(", ")
				}
				gt := goType(p.Type)
				switch gt {
				case "time.Time", "time.Duration":
					needsTime = true
				case "*big.Int":
					needsBig = true
				}
				fmt.Fprintf(&body, "%s %s", paramName(p.Name), gt)
			}
			fmt.Fprintf(&body, ") string {\n\treturn %s(%s", helperName(prefix), strconv.Quote(item.Value))
			for _, p := range params {
				body.WriteString(", ")
				body.WriteString(paramName(p.Name))
			}
			body.WriteString(")\n}\n\n")

		default:
			// Plain and suppressed entries get a constant accessor.
			writePlainAccessor(&body, fn, item)
		}
	}

	var out strings.Builder
	out.WriteString("// Code generated by resxcheck; DO NOT EDIT.\n\n")
	fmt.Fprintf(&out, "package %s\n\n", pkg)
	writeImports(&out, needsFormat, needsTime, needsBig)
	out.WriteString(body.String())
	if needsFormat {
		writeFormatHelper(&out, prefix)
	}

	src, err := format.Source([]byte(out.String()))
	if err != nil {
		return nil, fmt.Errorf("format generated source: %w", err)
	}
	return src, nil
}

func writePlainAccessor(body *strings.Builder, fn string, item *model.ResourceItem) {
	fmt.Fprintf(body, "// %s returns the %q resource value.\n", fn, item.Name)
	fmt.Fprintf(body, "func %s() string {\n\treturn %s\n}\n\n", fn, strconv.Quote(item.Value))
}

func writeImports(out *strings.Builder, needsFormat, needsTime, needsBig bool) {
	var imports []string
	if needsFormat {
		imports = append(imports, "fmt")
	}
	if needsBig {
		imports = append(imports, "math/big")
	}
	if needsFormat {
		imports = append(imports, "strings")
	}
	if needsTime {
		imports = append(imports, "time")
	}
	switch len(imports) {
	case 0:
		return
	case 1:
		fmt.Fprintf(out, "import %q\n\n", imports[0])
	default:
		out.WriteString("import (\n")
		for _, imp := range imports {
			fmt.Fprintf(out, "\t%q\n", imp)
		}
		out.WriteString(")\n\n")
	}
}

func helperName(prefix string) string {
	return "format" + prefix + "Item"
}

// writeFormatHelper emits the runtime substitution function shared by the
// group's parameterized accessors. Alignment and specifier clauses were
// already validated and are ignored at substitution time.
func writeFormatHelper(out *strings.Builder, prefix string) {
	name := helperName(prefix)
	fmt.Fprintf(out, "func %s(pattern string, args ...any) string {\n", name)
	out.WriteString(`	var sb strings.Builder
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		if c == '{' && i+1 < len(pattern) && pattern[i+1] == '{' {
			sb.WriteByte('{')
			i++
			continue
		}
		if c == '}' && i+1 < len(pattern) && pattern[i+1] == '}' {
			sb.WriteByte('}')
			i++
			continue
		}
		if c != '{' {
			sb.WriteByte(c)
			continue
		}
		j := i + 1
		index := 0
		for j < len(pattern) && pattern[j] >= '0' && pattern[j] <= '9' {
			index = index*10 + int(pattern[j]-'0')
			j++
		}
		for j < len(pattern) && pattern[j] != '}' {
			j++
		}
		if index < len(args) {
			sb.WriteString(fmt.Sprint(args[index]))
		}
		i = j
	}
	return sb.String()
}
`)
}

func goType(declared string) string {
	name := strings.TrimSuffix(strings.TrimSpace(declared), "?")
	if dot := strings.LastIndex(name, "."); dot >= 0 {
		name = name[dot+1:]
	}
	if gt, ok := goTypes[name]; ok {
		return gt
	}
	return "any"
}

func paramName(name string) string {
	if goKeywords[name] {
		return name + "_"
	}
	return name
}
