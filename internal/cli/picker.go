package cli

import (
	"fmt"

	"github.com/manifoldco/promptui"
)

// pickKey resolves the name argument. When present it is returned as-is;
// otherwise an interactive picker lists the registered keys. On a non-TTY
// stdin the picker fails, which surfaces as a usage error.
func pickKey(args []string, kind string, keys []string) (string, error) {
	if len(args) >= 1 {
		return args[0], nil
	}

	prompt := promptui.Select{
		Label: "Select " + kind,
		Items: keys,
		Size:  12,
	}
	_, key, err := prompt.Run()
	if err != nil {
		return "", fmt.Errorf("%s name required: %w", kind, err)
	}
	return key, nil
}
