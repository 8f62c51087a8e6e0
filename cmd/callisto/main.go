// Callisto is a budget-enforced contribution scoring pipeline.
//
// It loads a weighted contribution graph from its store, partitions nodes
// into weekly intervals, scales weights so that no address prefix exceeds
// its configured budget in any interval, propagates scores over the graph,
// and persists the result.
//
// Usage:
//
//	# Run the pipeline once with default configuration
//	callisto apply
//
//	# Run with a custom configuration file
//	callisto apply --config /path/to/config.yaml
//
//	# Validate a budget policy file without running
//	callisto validate --policy budgets.yaml
//
//	# Run continuously: scheduled runs plus policy hot reload
//	callisto serve
//
//	# Show version information
//	callisto version
package main

func main() {
	Execute()
}
