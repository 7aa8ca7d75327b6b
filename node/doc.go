// Package node holds the typed attribute sets of the SVG elements that
// svgattr knows how to resolve: the paint servers (linearGradient,
// radialGradient, pattern) and the basic shapes circle, ellipse, polygon
// and polyline.
//
// Paint server attributes are optional because an unset attribute is
// inherited from the template named by href; Resolved applies the SVG
// initial values to whatever is still unset after inheritance. Shape
// attributes default directly.
//
// Lengths are kept as written. Turning percentages and font-relative
// units into user-space numbers is the renderer's job.
package node
