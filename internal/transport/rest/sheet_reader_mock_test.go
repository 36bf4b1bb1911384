package rest

import (
	"io"
	"sync"

	"github.com/heartmarshall/incentive-ledger/internal/domain"
)

var _ sheetReader = &sheetReaderMock{}

type sheetReaderMock struct {
	ReadFunc func(src io.Reader) ([]domain.RawPlanRow, error)

	calls struct {
		Read []struct {
			Src io.Reader
		}
	}
	lockRead sync.RWMutex
}

func (mock *sheetReaderMock) Read(src io.Reader) ([]domain.RawPlanRow, error) {
	if mock.ReadFunc == nil {
		panic("sheetReaderMock.ReadFunc: method is nil but sheetReader.Read was just called")
	}
	callInfo := struct {
		Src io.Reader
	}{Src: src}
	mock.lockRead.Lock()
	mock.calls.Read = append(mock.calls.Read, callInfo)
	mock.lockRead.Unlock()
	return mock.ReadFunc(src)
}

func (mock *sheetReaderMock) ReadCalls() []struct {
	Src io.Reader
} {
	mock.lockRead.RLock()
	calls := mock.calls.Read
	mock.lockRead.RUnlock()
	return calls
}
