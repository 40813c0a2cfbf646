// Package cin renders a cin map as an OpenVanilla/gcin ".cin" input-method table.
//
// Body renders only the %chardef section: one "key candidate" line per
// association, keys in ascending byte order. Candidates under one key carry
// no meaningful order; they are printed sorted, each exactly once, but
// callers must not depend on that order. Write wraps the body in the fixed
// header and footer through text/template.
package cin
