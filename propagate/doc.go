// Package propagate implements the forward, priority-aware
// multi-source breadth-first propagation every simulation and PRR
// sample in this engine runs: seeds push Ca/Cr messages outward, a
// message reaching a boosted node is upgraded (Ca->Ca+, Cr->Cr-), and
// same-round arrivals at a node are resolved by the configured
// Priority rather than arrival order.
//
// The traversal itself is grounded on lvlath/graph's bfsTraverse: a
// plain slice-backed FIFO queue, no container/list, walked once per
// call — generalized here from single-source unweighted reachability
// to multi-source state propagation with a tie-break rule.
package propagate
