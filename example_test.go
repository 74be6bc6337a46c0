package clusterkit_test

import (
	"context"
	"fmt"
	"log"

	"github.com/hupe1980/clusterkit"
)

func Example() {
	ds, err := clusterkit.FromVectors([][]float32{
		{0, 0}, {0, 1},
		{10, 0}, {10, 1},
	})
	if err != nil {
		log.Fatal(err)
	}

	ck, err := clusterkit.New(ds, 2, clusterkit.WithSeed(1))
	if err != nil {
		log.Fatal(err)
	}

	init, err := clusterkit.CentroidsFromVectors([][]float32{{0, 0}, {10, 0}})
	if err != nil {
		log.Fatal(err)
	}

	res, err := ck.Lloyd(context.Background(), init)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("SSE: %g\n", res.SSE)
	fmt.Printf("Partition: %v\n", res.Partition)
	// Output:
	// SSE: 2
	// Partition: [0 0 1 1]
}

func ExampleClusterer_Restart() {
	ds, err := clusterkit.FromVectors([][]float32{
		{0, 0}, {0, 1}, {1, 0},
		{10, 0}, {10, 1}, {11, 0},
	})
	if err != nil {
		log.Fatal(err)
	}

	ck, err := clusterkit.New(ds, 2, clusterkit.WithSeed(4711))
	if err != nil {
		log.Fatal(err)
	}

	res, err := ck.Restart(context.Background(), 20)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("sizes: %v\n", res.Partition.Sizes(2))
	// Output:
	// sizes: [3 3]
}
