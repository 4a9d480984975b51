package theme

func DefaultTheme() *Theme {
	return &Theme{
		Name: "default",

		Primary:   "#7D56F4",
		Secondary: "#8aa4eb",
		Success:   "#04B575",
		Error:     "#FF0000",
		Warning:   "#FF8800",

		TextPrimary:   "#FAFAFA",
		TextSecondary: "#888888",
		TextMuted:     "#6C6C6C",

		PriorityHigh:   "#FF5F5F",
		PriorityNormal: "#0088FF",
		PriorityLow:    "#888888",

		Completed: "#04B575",
		Open:      "#FAFAFA",

		BorderColor:  "#7D56F4",
		SelectedBg:   "#7D56F4",
		SelectedFg:   "#FAFAFA",
		HeaderBg:     "#7D56F4",
		HeaderFg:     "#FAFAFA",
		Separator:    "#444444",
		HelpText:     "#626262",
		SubtitleText: "#888888",
	}
}

func DarkTheme() *Theme {
	return &Theme{
		Name: "dark",

		Primary:   "#00D7FF",
		Secondary: "#5FAFFF",
		Success:   "#5FD75F",
		Error:     "#FF5F5F",
		Warning:   "#FFAF00",

		TextPrimary:   "#E4E4E4",
		TextSecondary: "#A8A8A8",
		TextMuted:     "#585858",

		PriorityHigh:   "#FF5F5F",
		PriorityNormal: "#5FAFFF",
		PriorityLow:    "#808080",

		Completed: "#5FD75F",
		Open:      "#E4E4E4",

		BorderColor:  "#00D7FF",
		SelectedBg:   "#005F87",
		SelectedFg:   "#FFFFFF",
		HeaderBg:     "#303030",
		HeaderFg:     "#00D7FF",
		Separator:    "#3A3A3A",
		HelpText:     "#6C6C6C",
		SubtitleText: "#A8A8A8",
	}
}

func DraculaTheme() *Theme {
	return &Theme{
		Name: "dracula",

		Primary:   "#BD93F9",
		Secondary: "#8BE9FD",
		Success:   "#50FA7B",
		Error:     "#FF5555",
		Warning:   "#FFB86C",

		TextPrimary:   "#F8F8F2",
		TextSecondary: "#BFBFBF",
		TextMuted:     "#6272A4",

		PriorityHigh:   "#FF5555",
		PriorityNormal: "#8BE9FD",
		PriorityLow:    "#6272A4",

		Completed: "#50FA7B",
		Open:      "#F8F8F2",

		BorderColor:  "#BD93F9",
		SelectedBg:   "#44475A",
		SelectedFg:   "#F8F8F2",
		HeaderBg:     "#BD93F9",
		HeaderFg:     "#282A36",
		Separator:    "#44475A",
		HelpText:     "#6272A4",
		SubtitleText: "#FF79C6",
	}
}

func NordTheme() *Theme {
	return &Theme{
		Name: "nord",

		Primary:   "#88C0D0",
		Secondary: "#81A1C1",
		Success:   "#A3BE8C",
		Error:     "#BF616A",
		Warning:   "#EBCB8B",

		TextPrimary:   "#ECEFF4",
		TextSecondary: "#D8DEE9",
		TextMuted:     "#4C566A",

		PriorityHigh:   "#BF616A",
		PriorityNormal: "#81A1C1",
		PriorityLow:    "#4C566A",

		Completed: "#A3BE8C",
		Open:      "#ECEFF4",

		BorderColor:  "#88C0D0",
		SelectedBg:   "#434C5E",
		SelectedFg:   "#ECEFF4",
		HeaderBg:     "#5E81AC",
		HeaderFg:     "#ECEFF4",
		Separator:    "#3B4252",
		HelpText:     "#4C566A",
		SubtitleText: "#D8DEE9",
	}
}
