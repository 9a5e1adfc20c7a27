package binder

import (
	"encoding/json"
	"net/http"
	"net/url"
	"reflect"
	"regexp"
	"strings"

	"github.com/creasty/defaults"
	"github.com/go-playground/mold/v4"
	"github.com/go-playground/mold/v4/modifiers"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/schema"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/robinjoseph08/golib/echo/v4/middleware/logger"
	"github.com/stagebook/stagebook/pkg/errcodes"
)

var unknownFieldsRE = regexp.MustCompile(`^json: unknown field "(.*)"$`)

// Context keys a handler can set before calling Bind.
const (
	// DisallowEmptyBody set to false lets a POST arrive without a body, e.g.
	// a search with no term.
	DisallowEmptyBody = "disallow_empty_body"
	// DisallowUnknownFields set to false accepts JSON keys the payload
	// doesn't declare.
	DisallowUnknownFields = "disallow_unknown_fields"
)

// Binder implements echo.Binder. Venue, artist and show submissions arrive
// either as HTML form posts or as JSON; both are decoded into the same payload
// struct, then cleaned with mold, defaulted and validated.
type Binder struct {
	queryDecoder *schema.Decoder
	formDecoder  *schema.Decoder
	conform      *mold.Transformer
	validate     *validator.Validate
}

func New() (*Binder, error) {
	queryDecoder := schema.NewDecoder()
	queryDecoder.SetAliasTag("query")

	formDecoder := schema.NewDecoder()
	formDecoder.SetAliasTag("form")
	// Forms post their submit buttons alongside the data.
	formDecoder.IgnoreUnknownKeys(true)

	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	for tag, fn := range map[string]validator.Func{
		starttime: startTimeValidator,
		weburl:    urlValidator,
		phone:     phoneValidator,
	} {
		if err := validate.RegisterValidation(tag, fn); err != nil {
			return nil, errors.Wrapf(err, "register %s validator", tag)
		}
	}

	return &Binder{
		queryDecoder: queryDecoder,
		formDecoder:  formDecoder,
		conform:      modifiers.New(),
		validate:     validate,
	}, nil
}

// Bind decodes the request into i, then modifies, defaults and validates it.
func (b *Binder) Bind(i interface{}, c echo.Context) error {
	req := c.Request()

	if req.ContentLength > 0 {
		if err := b.decodeBody(i, c); err != nil {
			return err
		}
	} else {
		switch req.Method {
		case http.MethodGet, http.MethodHead, http.MethodDelete:
			if err := b.decodeValues(i, c.QueryParams(), b.queryDecoder); err != nil {
				return err
			}
		default:
			if flag(c, DisallowEmptyBody, true) {
				return errcodes.EmptyRequestBody()
			}
		}
	}

	if err := b.conform.Struct(req.Context(), i); err != nil {
		return errors.WithStack(err)
	}

	if err := defaults.Set(i); err != nil {
		return errors.WithStack(err)
	}

	if err := b.validate.Struct(i); err != nil {
		var errs validator.ValidationErrors
		if !errors.As(err, &errs) || len(errs) == 0 {
			return errors.WithStack(err)
		}
		return errcodes.ValidationError(formatValidationError(errs[0]))
	}
	return nil
}

func (b *Binder) decodeBody(i interface{}, c echo.Context) error {
	ctype := c.Request().Header.Get(echo.HeaderContentType)
	switch {
	case strings.HasPrefix(ctype, echo.MIMEApplicationJSON):
		return b.decodeJSON(i, c)
	case strings.HasPrefix(ctype, echo.MIMEApplicationForm), strings.HasPrefix(ctype, echo.MIMEMultipartForm):
		params, err := c.FormParams()
		if err != nil {
			logger.FromEchoContext(c).Err(err).Warn("unable to parse form")
			return errcodes.MalformedPayload()
		}
		return b.decodeValues(i, params, b.formDecoder)
	default:
		return errcodes.UnsupportedMediaType()
	}
}

func (b *Binder) decodeJSON(i interface{}, c echo.Context) error {
	req := c.Request()
	defer req.Body.Close()

	dec := json.NewDecoder(req.Body)
	if flag(c, DisallowUnknownFields, true) {
		dec.DisallowUnknownFields()
	}
	err := dec.Decode(i)
	if err == nil {
		return nil
	}

	if matches := unknownFieldsRE.FindStringSubmatch(err.Error()); len(matches) > 1 {
		return errcodes.UnknownParameter(matches[1])
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return errcodes.ValidationTypeError(formatUnmarshalTypeError(typeErr))
	}

	logger.FromEchoContext(c).Err(err).Error("unknown json decode error")
	return errcodes.MalformedPayload()
}

func (b *Binder) decodeValues(i interface{}, params url.Values, decoder *schema.Decoder) error {
	err := decoder.Decode(i, params)
	if err == nil {
		return nil
	}

	var multi schema.MultiError
	if !errors.As(err, &multi) {
		return errors.WithStack(err)
	}
	for _, fieldErr := range multi {
		var conversion schema.ConversionError
		if errors.As(fieldErr, &conversion) {
			return errcodes.ValidationTypeError(formatSchemaConversionError(conversion))
		}
		var unknown schema.UnknownKeyError
		if errors.As(fieldErr, &unknown) {
			return errcodes.UnknownParameter(unknown.Key)
		}
		return errors.WithStack(fieldErr)
	}
	return errors.WithStack(err)
}

// flag reads a boolean the handler stored on the context, or def when unset.
func flag(c echo.Context, key string, def bool) bool {
	if v, ok := c.Get(key).(bool); ok {
		return v
	}
	return def
}
