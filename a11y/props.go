package a11y

// Attributes is an ARIA-style attribute map. Absent keys are meaningful:
// a relationship attribute is omitted entirely while the content is closed.
type Attributes map[string]string

// PopoverTriggerAttrs derives the trigger attributes for a popover.
func PopoverTriggerAttrs(open bool, triggerID, contentID string) Attributes {
	attrs := Attributes{
		"id":            triggerID,
		"role":          "button",
		"aria-haspopup": "true",
		"aria-expanded": boolString(open),
	}
	if open {
		attrs["aria-controls"] = contentID
	}
	return attrs
}

// PopoverContentAttrs derives the content attributes for a popover.
func PopoverContentAttrs(contentID string) Attributes {
	return Attributes{
		"role": "dialog",
		"id":   contentID,
	}
}

// TooltipTriggerAttrs derives the trigger attributes for a tooltip.
func TooltipTriggerAttrs(open bool, triggerID, contentID string) Attributes {
	attrs := Attributes{
		"id":   triggerID,
		"role": "button",
	}
	if open {
		attrs["aria-describedby"] = contentID
	}
	return attrs
}

// TooltipContentAttrs derives the content attributes for a tooltip.
func TooltipContentAttrs(contentID string) Attributes {
	return Attributes{
		"role": "tooltip",
		"id":   contentID,
	}
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
