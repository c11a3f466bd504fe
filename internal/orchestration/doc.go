// Package orchestration runs the colorstats pipeline: retrieve a document,
// extract color tokens, compute statistics, search, draw a random number and
// sum Fibonacci terms. Retrieval is abstracted behind DocumentSource and
// output behind ReportPresenter.
//
// Ingestion failures are carried in a ColorResult. The configured
// ErrorPolicy decides whether the run degrades to empty data or aborts.
package orchestration
