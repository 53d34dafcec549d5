// Package is provides ready-made string format validation rules backed
// by govalidator. Each rule is a [schematics.CustomValidator] over
// string, usable anywhere a validator is accepted:
//
//	schematics.NewBuilder[string]().With(is.Email).Build()
package is

import (
	"github.com/asaskevich/govalidator"

	"github.com/qequ/schematics"
)

var (
	// Email checks if a string is a valid email address.
	Email = schematics.Custom[string]("must be a valid email address", govalidator.IsEmail)
	// URL checks if a string is a valid URL.
	URL = schematics.Custom[string]("must be a valid URL", govalidator.IsURL)
	// UUID checks if a string is a valid UUID (any version).
	UUID = schematics.Custom[string]("must be a valid UUID", govalidator.IsUUID)
	// Alpha checks if a string contains only letters.
	Alpha = schematics.Custom[string]("must contain letters only", govalidator.IsAlpha)
	// Alphanumeric checks if a string contains only letters and digits.
	Alphanumeric = schematics.Custom[string]("must contain letters and digits only", govalidator.IsAlphanumeric)
	// Numeric checks if a string contains only digits.
	Numeric = schematics.Custom[string]("must contain digits only", govalidator.IsNumeric)
	// LowerCase checks if a string is all lower case.
	LowerCase = schematics.Custom[string]("must be in lower case", govalidator.IsLowerCase)
	// UpperCase checks if a string is all upper case.
	UpperCase = schematics.Custom[string]("must be in upper case", govalidator.IsUpperCase)
	// IP checks if a string is a valid IPv4 or IPv6 address.
	IP = schematics.Custom[string]("must be a valid IP address", govalidator.IsIP)
	// IPv4 checks if a string is a valid IPv4 address.
	IPv4 = schematics.Custom[string]("must be a valid IPv4 address", govalidator.IsIPv4)
	// IPv6 checks if a string is a valid IPv6 address.
	IPv6 = schematics.Custom[string]("must be a valid IPv6 address", govalidator.IsIPv6)
	// JSON checks if a string is valid JSON text.
	JSON = schematics.Custom[string]("must be valid JSON", govalidator.IsJSON)
	// Base64 checks if a string is valid base64 text.
	Base64 = schematics.Custom[string]("must be encoded in base64", govalidator.IsBase64)
	// HexColor checks if a string is a valid hexadecimal color.
	HexColor = schematics.Custom[string]("must be a valid hex color", govalidator.IsHexcolor)
	// CreditCard checks if a string is a valid credit card number.
	CreditCard = schematics.Custom[string]("must be a valid credit card number", govalidator.IsCreditCard)
)
