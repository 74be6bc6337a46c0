// Package clusterkit provides batch k-means clustering for in-memory
// float32 datasets, built for comparing search strategies on a fixed
// workload.
//
// Four strategies share one result contract:
//
//	ck, _ := clusterkit.New(ds, 16, clusterkit.WithSeed(4711))
//
//	init := ck.InitRandom()
//	res, _ := ck.Lloyd(ctx, init)        // plain local search
//	res, _ = ck.Restart(ctx, 100)        // best of 100 random restarts
//	res, _ = ck.Swap(ctx, init, 5000)    // random-swap hill climbing
//	res, _ = ck.Bisect(ctx)              // bisecting growth to k
//
// Every strategy returns the best state it observed: the lowest SSE
// together with the partition and centroids that produced it.
//
// # Determinism
//
// All randomness flows through an injected source (WithRand / WithSeed).
// Without one, the source is seeded from the wall clock. Concurrent
// restart trials derive one child stream per trial, so results depend
// only on the seed, never on scheduling.
//
// # Concurrency
//
// A Clusterer is safe to share only between sequential calls: search
// state and the random source belong to the running call. Internal
// data parallelism (point assignment, restart trials) is controlled by
// WithParallelism and defaults to serial execution.
package clusterkit
