package async

import "errors"

var ErrAwaitCancelled = errors.New("async: context done before future completion")

func joinCancelled(err error) error {
	return errors.Join(ErrAwaitCancelled, err)
}
