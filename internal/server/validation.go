package server

import (
	"strings"
	"sync"

	"script-sheets/internal/colour"
	"script-sheets/internal/script"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var validatorOnce sync.Once

func registerValidators() {
	validatorOnce.Do(func() {
		engine, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = engine.RegisterValidation("appearance", func(fl validator.FieldLevel) bool {
			return script.Appearance(fl.Field().String()).Valid()
		})
		_ = engine.RegisterValidation("colorlist", func(fl validator.FieldLevel) bool {
			return validateColorList(fl.Field().String()) == nil
		})
	})
}

var sheetQueryMessages = bindMessages{
	"Color": {
		"colorlist": "color must be a comma separated list of hex colours",
	},
	"Appearance": {
		"appearance": "appearance must be normal, compact, super-compact or mega-compact",
	},
	"IconScale": {
		"gt":  "icon_scale must be positive",
		"lte": "icon_scale must be 4 or less",
	},
}

var scriptRequestMessages = bindMessages{
	"Script": {
		"required": "script is required",
	},
}

// splitColors accepts "#abc,#def" as well as a single colour.
func splitColors(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func validateColorList(raw string) error {
	for _, value := range splitColors(raw) {
		if _, _, _, err := colour.ParseRGB(value); err != nil {
			return err
		}
	}
	return nil
}
