package template_test

import (
	"fmt"
	"os"

	template "fbnoi.com/minitemplate"
)

func ExampleRender() {
	out, err := template.Render("Hello {{name}}! Today is {{day}}.", template.Params{
		"name": "John",
		"day":  "Sunday",
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(out)
	// Output: Hello John! Today is Sunday.
}

func ExampleEngine_RenderTo() {
	engine := template.NewEngine(template.WithCacheSize(64))
	if err := engine.RenderTo(os.Stdout, "{{ greeting }}, {{ who }}{{ missing }}.\n", template.Params{
		"greeting": "Hi",
		"who":      42,
	}); err != nil {
		fmt.Println(err)
	}
	// Output: Hi, 42.
}

func ExampleParse() {
	_, err := template.Parse(template.Tokenize("Hello {{ name"))
	fmt.Println(err)
	// Output: Malformed template: unclosed "{{" in line 1
}
