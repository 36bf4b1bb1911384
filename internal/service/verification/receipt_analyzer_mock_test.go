package verification

import (
	"context"
	"sync"

	"github.com/heartmarshall/incentive-ledger/internal/domain"
)

var _ receiptAnalyzer = &receiptAnalyzerMock{}

type receiptAnalyzerMock struct {
	AnalyzeFunc func(ctx context.Context, image []byte, contentType string, rc domain.ReceiptContext) (domain.ExtractionResult, error)

	calls struct {
		Analyze []struct {
			Ctx         context.Context
			Image       []byte
			ContentType string
			Rc          domain.ReceiptContext
		}
	}
	lockAnalyze sync.RWMutex
}

func (mock *receiptAnalyzerMock) Analyze(ctx context.Context, image []byte, contentType string, rc domain.ReceiptContext) (domain.ExtractionResult, error) {
	if mock.AnalyzeFunc == nil {
		panic("receiptAnalyzerMock.AnalyzeFunc: method is nil but receiptAnalyzer.Analyze was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		Image       []byte
		ContentType string
		Rc          domain.ReceiptContext
	}{Ctx: ctx, Image: image, ContentType: contentType, Rc: rc}
	mock.lockAnalyze.Lock()
	mock.calls.Analyze = append(mock.calls.Analyze, callInfo)
	mock.lockAnalyze.Unlock()
	return mock.AnalyzeFunc(ctx, image, contentType, rc)
}

func (mock *receiptAnalyzerMock) AnalyzeCalls() []struct {
	Ctx         context.Context
	Image       []byte
	ContentType string
	Rc          domain.ReceiptContext
} {
	mock.lockAnalyze.RLock()
	calls := mock.calls.Analyze
	mock.lockAnalyze.RUnlock()
	return calls
}
