// Package calibration converts the pixel lengths of road traces into
// real-world distances using one reference trace of known length.
//
// An Engine is single-use. It starts idle, accumulates traces one at a time
// through Observe, and is finalized exactly once:
//
//	engine := calibration.NewEngine(classify.New(markers), logrus.StandardLogger())
//	result, err := calibration.Run(doc.Elements(), engine)
//
// Every error is fatal to the run. Observe stops at the first malformed or
// unclassifiable trace, a second reference trace fails as soon as it is seen,
// and Finalize refuses to produce totals without a reference. No partial
// result is ever returned alongside an error.
package calibration
