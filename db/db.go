package db

import (
	"context"

	"github.com/TFMV/cyclomatic/types"
)

type DB interface {
	Initialize(ctx context.Context) error
	StoreReport(ctx context.Context, report types.DirectoryReport) error
}
