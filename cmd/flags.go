package cmd

import (
	"strconv"

	"github.com/spf13/pflag"

	"github.com/PhilipKram/rtab/internal/tableprinter"
)

// styleValue is a pflag.Value restricted to the known table styles.
type styleValue tableprinter.Style

var _ pflag.Value = (*styleValue)(nil)

func (s *styleValue) String() string { return string(*s) }

func (s *styleValue) Set(v string) error {
	style, err := tableprinter.ParseStyle(v)
	if err != nil {
		return err
	}
	*s = styleValue(style)
	return nil
}

func (s *styleValue) Type() string { return "style" }

// spacesValue is a lenient int flag: anything that is not an integer in
// [0, tableprinter.MaxSpacing] becomes defaultSpaces instead of a usage error.
type spacesValue int

const defaultSpaces = 1

var _ pflag.Value = (*spacesValue)(nil)

func (s *spacesValue) String() string { return strconv.Itoa(int(*s)) }

func (s *spacesValue) Set(v string) error {
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 || n > tableprinter.MaxSpacing {
		n = defaultSpaces
	}
	*s = spacesValue(n)
	return nil
}

func (s *spacesValue) Type() string { return "int" }
