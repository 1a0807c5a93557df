package imagegen

import (
	"fmt"
	"strings"
)

// BuildProductPrompt renders the product photography instruction sent to the
// image model.
func BuildProductPrompt(req ProductRequest) string {
	description := strings.Join(req.Description, ", ")
	lines := []string{
		fmt.Sprintf("Generate a professional product photography image of a modern electronics device called '%s' with this description: '%s'.", req.Name, description),
		"The image should show the product with clean lighting against a subtle gradient background with Best Buy branding elements.",
		"Make the product the clear focus, with high detail showing its features and design.",
		"Style should be consistent with premium electronics marketing.",
	}
	return strings.Join(lines, " ")
}
