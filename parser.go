package abi

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Regular expressions compiled once at package level
var (
	// Basic type: base identifier, optional width, optional array modifiers
	basicTypeRegex = regexp.MustCompile(`^([A-Za-z]+)([0-9]*)((?:\[[0-9]*\])*)$`)

	// A run of array modifiers, e.g. "[3][]"
	arraySuffixRegex = regexp.MustCompile(`^(?:\[[0-9]*\])*$`)

	// A single array modifier
	arrayModifierRegex = regexp.MustCompile(`\[[0-9]*\]`)
)

// Parse lifts a list of textual ABI type signatures into a codec tree. The
// result is a tuple codec over the parsed list, matching the top level of
// every ABI call.
func Parse(types []string) (*TupleCodec, error) {
	codecs := make([]Codec, len(types))
	for i, s := range types {
		codec, err := ParseType(s)
		if err != nil {
			return nil, err
		}
		codecs[i] = codec
	}
	return NewTupleCodec(codecs), nil
}

// ParseType parses a single type signature such as "uint256" or
// "(address,bytes)[]".
func ParseType(s string) (Codec, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "(") {
		return parseTupleType(s)
	}
	return parseBasicType(s)
}

func parseTupleType(s string) (Codec, error) {
	end := matchingParen(s)
	if end < 0 {
		return nil, &UnknownTypeError{Name: s}
	}

	inner := s[1:end]
	suffix := s[end+1:]
	if !arraySuffixRegex.MatchString(suffix) {
		return nil, &UnknownTypeError{Name: s}
	}

	var codecs []Codec
	if strings.TrimSpace(inner) != "" {
		parts, err := splitTopLevel(inner)
		if err != nil {
			return nil, err
		}
		codecs = make([]Codec, len(parts))
		for i, part := range parts {
			codec, err := ParseType(part)
			if err != nil {
				return nil, err
			}
			codecs[i] = codec
		}
	}

	return applyArraySuffix(NewTupleCodec(codecs), suffix)
}

func parseBasicType(s string) (Codec, error) {
	matches := basicTypeRegex.FindStringSubmatch(s)
	if matches == nil {
		return nil, &UnknownTypeError{Name: s}
	}

	base := strings.ToLower(matches[1])
	sub := matches[2]
	suffix := matches[3]

	var codec Codec
	switch base {
	case "address":
		if sub != "" {
			return nil, &UnknownTypeError{Name: base + sub}
		}
		codec = AddressCodec{}
	case "bool":
		if sub != "" {
			return nil, &UnknownTypeError{Name: base + sub}
		}
		codec = BooleanCodec{}
	case "string":
		if sub != "" {
			return nil, &UnknownTypeError{Name: base + sub}
		}
		codec = StringCodec{}
	case "bytes":
		if sub == "" {
			codec = DynamicBytesCodec{}
		} else {
			size, err := strconv.Atoi(sub)
			if err != nil || size < 1 || size > 32 {
				return nil, &UnknownTypeError{Name: base + sub}
			}
			codec = NewFixedBytesCodec(size)
		}
	case "uint", "int":
		size := 256
		if sub != "" {
			var err error
			size, err = strconv.Atoi(sub)
			if err != nil {
				return nil, &UnknownTypeError{Name: base + sub}
			}
		}
		if size < 8 || size > 256 || size%8 != 0 {
			return nil, &UnknownTypeError{Name: fmt.Sprintf("%s%d", base, size)}
		}
		if base == "uint" {
			codec = NewUintCodec(size)
		} else {
			codec = NewIntCodec(size)
		}
	case "fixed", "ufixed", "function":
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, base)
	default:
		return nil, &UnknownTypeError{Name: base}
	}

	return applyArraySuffix(codec, suffix)
}

// applyArraySuffix wraps codec with the array modifiers in source order, so
// the rightmost modifier becomes the outermost container: "uint256[3][]" is
// a dynamic array of fixed-3 arrays.
func applyArraySuffix(codec Codec, suffix string) (Codec, error) {
	for _, modifier := range arrayModifierRegex.FindAllString(suffix, -1) {
		if modifier == "[]" {
			codec = NewDynamicArrayCodec(codec)
			continue
		}
		size, err := strconv.Atoi(modifier[1 : len(modifier)-1])
		if err != nil {
			return nil, &UnknownTypeError{Name: modifier}
		}
		codec = NewFixedArrayCodec(size, codec)
	}
	return codec, nil
}

// matchingParen returns the index of the parenthesis closing s[0], or -1.
func matchingParen(s string) int {
	depth := 0
	for i, ch := range s {
		switch ch {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// splitTopLevel splits a comma-separated type list, ignoring commas nested
// inside parentheses.
func splitTopLevel(s string) ([]string, error) {
	var parts []string
	var current strings.Builder
	depth := 0

	for _, ch := range s {
		switch {
		case ch == '(':
			depth++
			current.WriteRune(ch)
		case ch == ')':
			depth--
			current.WriteRune(ch)
		case ch == ',' && depth == 0:
			parts = append(parts, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteRune(ch)
		}
	}
	parts = append(parts, strings.TrimSpace(current.String()))

	if depth != 0 {
		return nil, &UnknownTypeError{Name: s}
	}
	return parts, nil
}
