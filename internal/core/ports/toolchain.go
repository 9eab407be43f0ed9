package ports

import (
	"context"

	"go.trai.ch/cross/internal/core/domain"
)

//go:generate mockgen -source=toolchain.go -destination=mocks/mock_toolchain.go -package=mocks

// Provisioner makes sure the toolchain for a triple is installed.
type Provisioner interface {
	// Ensure installs the toolchain for triple. A toolchain that is already
	// present is not an error.
	Ensure(ctx context.Context, triple domain.Triple) error
}

// Compiler invokes the external compiler.
type Compiler interface {
	// Compile builds the project for triple in mode. An empty triple builds for the local machine.
	Compile(ctx context.Context, triple domain.Triple, mode domain.BuildMode) error
}
