package assets

// DefaultTemplateName is the name of the built-in page template.
const DefaultTemplateName = "default"

// DefaultStyleName is the name of the built-in CSS style.
const DefaultStyleName = "default"
