// Package async provides a small generic Future type used to express asynchronous checks
// explicitly: a computation returns a *Future and the consumer decides when to wait for it.
//
// A Future is obtained by calling Async, which starts the supplied function in its own
// goroutine, or from Resolved and Failed, which return already completed futures for values
// that are known synchronously. Consumers wait with Await, or with AwaitContext when the wait
// itself must honour cancellation and deadlines.
//
// # Usage
//
//	future := async.Async(ctx, email, func(ctx context.Context, email string) (bool, error) {
//	    return directory.IsFree(ctx, email)
//	})
//
//	free, err := future.AwaitContext(ctx)
//	if err != nil {
//	    return err
//	}
//
// # Error Handling
//
// Futures carry the error returned by the user callback. AwaitContext reports an abandoned
// wait as ErrAwaitCancelled joined with the context error, so both errors.Is(err,
// async.ErrAwaitCancelled) and errors.Is(err, context.DeadlineExceeded) work.
package async
