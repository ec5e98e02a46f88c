package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// AddJob inserts a job. Inside a transaction the job commits or rolls back
// together with the charts written in it.
func (p *PgSQL) AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error) {
	var (
		res *rivertype.JobInsertResult
		err error
	)
	switch db := p.DB.(type) {
	case *sql.Tx:
		res, err = p.jobs.InsertTx(ctx, db, args, opts)
	default:
		res, err = p.jobs.Insert(ctx, args, opts)
	}
	if err != nil {
		return false, fmt.Errorf("could not insert %s job: %w", args.Kind(), err)
	}

	return !res.UniqueSkippedAsDuplicate, nil
}
