package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate checks field rules and the cross-field rock budget
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s failed '%s' (got %v)", fe.Field(), fe.Tag(), fe.Value()))
			}
			return fmt.Errorf(ErrMsgInvalidConfigFmt, strings.Join(msgs, "; "))
		}
		return fmt.Errorf(ErrMsgInvalidConfigFmt, err.Error())
	}

	if plots := cfg.FarmRows * cfg.FarmCols; cfg.FarmLayoutFile == "" && cfg.RockCount > plots {
		return fmt.Errorf(ErrMsgTooManyRocksFmt, cfg.RockCount, plots, cfg.FarmRows, cfg.FarmCols)
	}

	return nil
}

// Warnings lists settings that are legal but probably not what was meant
func Warnings(cfg *Config) []string {
	var warnings []string

	if cfg.FarmLayoutFile != "" {
		if _, err := os.Stat(cfg.FarmLayoutFile); err != nil {
			warnings = append(warnings, fmt.Sprintf("FARM_LAYOUT_FILE %q is not readable: %v", cfg.FarmLayoutFile, err))
		}
		if cfg.RockCount > 0 {
			warnings = append(warnings, "ROCK_COUNT is ignored when FARM_LAYOUT_FILE is set")
		}
	}

	if cfg.RandomSeed != 0 && !cfg.IsDev() {
		warnings = append(warnings, "RANDOM_SEED is fixed outside dev - every game will play out the same")
	}

	return warnings
}
