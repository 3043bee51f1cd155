// Package routelog supplies the structured-logging collaborator handle
// threaded through the routing pipeline.
//
// There is no package-level logger and no global configuration: every
// constructor that needs to log (gcell.New, routecore.NewPipeline)
// accepts a logr.Logger value explicitly; router and verify do not log.
// routelog
// only supplies a convenient default sink (a plain console writer built
// on logr/funcr) so a caller does not have to wire a full logging
// provider just to run the pipeline.
package routelog
