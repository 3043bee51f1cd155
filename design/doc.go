// Package design defines the plain data contracts this module consumes
// from an external design database and the closed taxonomy of errors the
// routing pipeline reports.
//
// Nothing in this package parses a file. DEF/LEF parsing, guide-file
// parsing, and .ini config loading stay external to this module; design
// only names the shapes those loaders are expected to hand back.
package design
