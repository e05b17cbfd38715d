package middleware

import (
	"catalog/internal/validation"

	"github.com/gofiber/fiber/v2"
)

const validatedInputKey = "validated_input"

// Validate runs rules against the request and answers 400 with the collected
// errors when any rule fails. Otherwise the validated input is stored for the
// handler and the chain continues.
func Validate(rules validation.RuleSet) fiber.Handler {
	return func(c *fiber.Ctx) error {
		in := validation.Input{
			Params: c.AllParams(),
			Body:   map[string]any{},
		}

		if rules.ReadsBody() {
			body, ok := decodeBody(c)
			if !ok {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"errors": []validation.FieldError{validation.InvalidBody()},
				})
			}
			in.Body = body
		}

		if errs := rules.Validate(in); len(errs) > 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"errors": errs,
			})
		}

		c.Locals(validatedInputKey, in)
		return c.Next()
	}
}

// ValidatedInput returns the input stored by Validate. ok is false when the
// route has no validation gate.
func ValidatedInput(c *fiber.Ctx) (in validation.Input, ok bool) {
	in, ok = c.Locals(validatedInputKey).(validation.Input)
	return in, ok
}

// decodeBody reads the request body as a JSON object. An empty body is an
// empty object.
func decodeBody(c *fiber.Ctx) (map[string]any, bool) {
	raw := c.Body()
	if len(raw) == 0 {
		return map[string]any{}, true
	}

	var decoded any
	if err := c.App().Config().JSONDecoder(raw, &decoded); err != nil {
		return nil, false
	}
	body, ok := decoded.(map[string]any)
	if !ok {
		return nil, false
	}
	return body, true
}
