package figure

import (
	"errors"
	"net/url"
	"strings"

	"github.com/bgraf/figurekit/option"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var allowedLinkSchemes = map[string]struct{}{
	"":       {},
	"http":   {},
	"https":  {},
	"mailto": {},
}

// Validate checks cfg before it is encoded. The returned error is a
// validation.Errors keyed by the JSON field name. Encode itself does not
// validate.
func Validate(cfg ImageConfig) error {
	return validation.ValidateStruct(&cfg,
		validation.Field(&cfg.Src, validation.Required.Error("image source is required")),
		validation.Field(&cfg.Alt, validation.Required.Error("alt text is required for accessibility")),
		validation.Field(&cfg.Width, validation.By(positiveWidth)),
		validation.Field(&cfg.WrapMode, validation.In(toAny(WrapModes)...)),
		validation.Field(&cfg.BorderRadius, validation.In(toAny(BorderRadii)...)),
		validation.Field(&cfg.Shadow, validation.In(toAny(Shadows)...)),
		validation.Field(&cfg.LinkURL, validation.By(linkURL)),
	)
}

func positiveWidth(value interface{}) error {
	w, _ := value.(option.Option[int])
	if w.IsSome() && w.Get() <= 0 {
		return errors.New("width must be a positive number of pixels")
	}
	return nil
}

func linkURL(value interface{}) error {
	raw, _ := value.(string)
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	u, err := url.Parse(raw)
	if err != nil {
		return errors.New("link is not a valid URL")
	}

	if _, ok := allowedLinkSchemes[strings.ToLower(u.Scheme)]; !ok {
		return errors.New("link scheme is not permitted")
	}

	return nil
}

func toAny[T any](values []T) []interface{} {
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
