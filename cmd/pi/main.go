package main

import (
	"fmt"
	"os"

	"quadpi"
)

// Interactive one-shot run: prompt for the number of subdivisions and
// the number of workers, compute, report the approximation and the
// elapsed time of the parallel phase. Prompts and messages match the
// reference program verbatim.

func main() {
	var steps uint64
	fmt.Print("Podaj liczbe podzialow (np. 1000000000): ")
	if _, err := fmt.Scan(&steps); err != nil {
		fail()
	}

	var workers int
	fmt.Print("Podaj liczbe watkow: ")
	if _, err := fmt.Scan(&workers); err != nil {
		fail()
	}

	req := quadpi.Request{Steps: steps, Workers: workers}
	if err := req.Validate(); err != nil {
		fail()
	}

	res, err := quadpi.Run(req)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Printf("Przyblizona wartosc liczby PI: %.6f\n", res.Value)
	fmt.Printf("Czas obliczen: %.6f sekund\n", res.Elapsed.Seconds())
}

// fail reports invalid input the way the reference program does:
// message on stderr, exit status 1, no numeric output.
func fail() {
	fmt.Fprintln(os.Stderr, "Liczba watkow i podzialow musi byc dodatnia!")
	os.Exit(1)
}
