// Package orchestrate wires the sampling/selection core (prr, primm,
// saimm, sampler, workerpool) and the evaluator together behind the six
// concrete algorithms the engine dispatches to: pr-imm, sa-imm,
// sa-rg-imm, greedy, max-degree and page-rank. cmd/c2ic's command layer
// parses flags into a config.Built and calls Run; everything below that
// is plain Go, independent of cobra/viper.
package orchestrate
