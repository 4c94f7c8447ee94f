package controls

import (
	"fmt"
	"strconv"

	"github.com/goliatone/go-bootstrapforms/pkg/markup"
)

// Choice is one option of a select or radio group.
type Choice struct {
	Text     string `json:"text" yaml:"text"`
	Value    string `json:"value" yaml:"value"`
	Selected bool   `json:"selected,omitempty" yaml:"selected,omitempty"`
}

// Input is a fully resolved control request: the builder has already derived
// the HTML name, id and current value, and stripped every decoration option.
type Input struct {
	Variant Variant
	Name    string
	ID      string
	Value   any
	// Checked applies to check_box and radio_button.
	Checked bool
	// CheckedValue is the value submitted by a ticked checkbox ("1" when
	// empty); UncheckedValue is carried by the preceding hidden field.
	CheckedValue   string
	UncheckedValue string
	IncludeHidden  bool
	Choices        []Choice
	Prompt         string
	// Text is the caption of button-like controls.
	Text  string
	Attrs markup.Attributes
}

// FormatValue renders a value the way it is echoed into a value attribute.
func FormatValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
