package theme

import "strconv"

// Template maps a semantic role to a palette stop index.
type Template map[string]int

// Semantic roles.
const (
	RoleBackground            = "background"
	RoleBackgroundHover       = "backgroundHover"
	RoleBackgroundPress       = "backgroundPress"
	RoleBackgroundFocus       = "backgroundFocus"
	RoleBackgroundStrong      = "backgroundStrong"
	RoleBackgroundTransparent = "backgroundTransparent"
	RoleColor                 = "color"
	RoleColorHover            = "colorHover"
	RoleColorPress            = "colorPress"
	RoleColorFocus            = "colorFocus"
	RoleColorTransparent      = "colorTransparent"
	RoleColorSubtitle         = "colorSubtitle"
	RoleBorderColor           = "borderColor"
	RoleBorderColorHover      = "borderColorHover"
	RoleBorderColorPress      = "borderColorPress"
	RoleBorderColorFocus      = "borderColorFocus"
	RolePlaceholderColor      = "placeholderColor"
	RoleOutlineColor          = "outlineColor"
	RoleShadowColor           = "shadowColor"
)

// Template names.
const (
	TemplateBase           = "base"
	TemplateSurface1       = "surface1"
	TemplateSurface2       = "surface2"
	TemplateSurface3       = "surface3"
	TemplateInverseSurface = "inverseSurface"
	TemplateAlt1           = "alt1"
	TemplateAlt2           = "alt2"
)

// SurfaceNames are the elevation themes that must never nest in one another.
var SurfaceNames = []string{
	TemplateAlt1, TemplateAlt2, TemplateSurface1, TemplateSurface2, TemplateSurface3, TemplateInverseSurface,
}

// elevated builds a template whose background and border roles sit shift
// stops above the base ones. Foreground roles are unchanged.
func elevated(shift int) Template {
	t := Template{
		RoleBackground:            0 + shift,
		RoleBackgroundHover:       1 + shift,
		RoleBackgroundPress:       2 + shift,
		RoleBackgroundFocus:       1 + shift,
		RoleBackgroundStrong:      1 + shift,
		RoleBackgroundTransparent: 0 + shift,
		RoleBorderColor:           3 + shift,
		RoleBorderColorHover:      4 + shift,
		RoleBorderColorPress:      5 + shift,
		RoleBorderColorFocus:      4 + shift,
		RoleColor:                 11,
		RoleColorHover:            10,
		RoleColorPress:            11,
		RoleColorFocus:            10,
		RoleColorTransparent:      11,
		RoleColorSubtitle:         9,
		RolePlaceholderColor:      8,
		RoleOutlineColor:          7,
		RoleShadowColor:           11,
	}
	for i := 0; i < PaletteStops; i++ {
		t["color"+strconv.Itoa(i+1)] = i
	}
	return t
}

func inverse() Template {
	t := Template{
		RoleBackground:            11,
		RoleBackgroundHover:       10,
		RoleBackgroundPress:       9,
		RoleBackgroundFocus:       10,
		RoleBackgroundStrong:      10,
		RoleBackgroundTransparent: 11,
		RoleBorderColor:           8,
		RoleBorderColorHover:      7,
		RoleBorderColorPress:      6,
		RoleBorderColorFocus:      7,
		RoleColor:                 0,
		RoleColorHover:            1,
		RoleColorPress:            0,
		RoleColorFocus:            1,
		RoleColorTransparent:      0,
		RoleColorSubtitle:         2,
		RolePlaceholderColor:      3,
		RoleOutlineColor:          4,
		RoleShadowColor:           0,
	}
	for i := 0; i < PaletteStops; i++ {
		t["color"+strconv.Itoa(i+1)] = PaletteStops - 1 - i
	}
	return t
}

// DefaultTemplates returns the shared, brand-independent role templates.
func DefaultTemplates() map[string]Template {
	return map[string]Template{
		TemplateBase:           elevated(0),
		TemplateSurface1:       elevated(1),
		TemplateSurface2:       elevated(2),
		TemplateSurface3:       elevated(3),
		TemplateAlt1:           elevated(1),
		TemplateAlt2:           elevated(2),
		TemplateInverseSurface: inverse(),
	}
}
