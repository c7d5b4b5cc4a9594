//go:build (linux || darwin) && (amd64 || arm64)

package main

import (
	"github.com/JorgeMoragaCalvo/theses-impl-sub000/solver"
	"github.com/JorgeMoragaCalvo/theses-impl-sub000/solver/highsbackend"
)

func init() {
	newMIPBackend = func() solver.MIPBackend { return highsbackend.New() }
}
