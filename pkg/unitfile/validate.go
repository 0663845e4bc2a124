// SPDX-License-Identifier: MPL-2.0

package unitfile

import "fmt"

// Validate checks the rules the CUE schema leaves open: every unit is either
// a root unit (type only) or a derived unit (base and scalar). It returns
// nil or ValidationErrors.
func (uf *Unitfile) Validate() error {
	var errs ValidationErrors
	for i, u := range uf.Units {
		path := fmt.Sprintf("units[%d]", i)
		switch {
		case u.Type != "" && u.Base != "":
			errs = append(errs, &InvalidDefinitionError{Path: path, Reason: fmt.Sprintf("unit %q sets both type and base", u.Name)})
		case u.Type == "" && u.Base == "":
			errs = append(errs, &InvalidDefinitionError{Path: path, Reason: fmt.Sprintf("unit %q needs a type or a base", u.Name)})
		case u.Type != "" && u.Scalar != 0:
			errs = append(errs, &InvalidDefinitionError{Path: path + ".scalar", Reason: fmt.Sprintf("root unit %q cannot set a scalar", u.Name)})
		case u.Base != "" && u.Scalar == 0:
			errs = append(errs, &InvalidDefinitionError{Path: path + ".scalar", Reason: fmt.Sprintf("derived unit %q needs a scalar", u.Name)})
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}
