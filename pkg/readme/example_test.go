package readme_test

import (
	"fmt"

	"github.com/matzehuels/readmerator/pkg/readme"
)

func ExampleSanitizeName() {
	fmt.Println(readme.SanitizeName("requests"))
	fmt.Println(readme.SanitizeName("@types/node"))
	// Output:
	// requests
	// types_node
}

func ExampleNameFromURL() {
	fmt.Println(readme.NameFromURL("https://github.com/psf/requests"))
	fmt.Println(readme.NameFromURL("https://example.com/docs/guide.md"))
	// Output:
	// psf_requests
	// guide
}
