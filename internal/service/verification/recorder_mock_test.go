package verification

import (
	"sync"
	"time"

	"github.com/heartmarshall/incentive-ledger/internal/domain"
)

var _ recorder = &recorderMock{}

type recorderMock struct {
	RecordAnalyzerFunc func(ok bool, elapsed time.Duration)
	RecordDecisionFunc func(outcome domain.Outcome, gate string)

	calls struct {
		RecordAnalyzer []struct {
			Ok      bool
			Elapsed time.Duration
		}
		RecordDecision []struct {
			Outcome domain.Outcome
			Gate    string
		}
	}
	lockRecordAnalyzer sync.RWMutex
	lockRecordDecision sync.RWMutex
}

func (mock *recorderMock) RecordAnalyzer(ok bool, elapsed time.Duration) {
	if mock.RecordAnalyzerFunc == nil {
		panic("recorderMock.RecordAnalyzerFunc: method is nil but recorder.RecordAnalyzer was just called")
	}
	callInfo := struct {
		Ok      bool
		Elapsed time.Duration
	}{Ok: ok, Elapsed: elapsed}
	mock.lockRecordAnalyzer.Lock()
	mock.calls.RecordAnalyzer = append(mock.calls.RecordAnalyzer, callInfo)
	mock.lockRecordAnalyzer.Unlock()
	mock.RecordAnalyzerFunc(ok, elapsed)
}

func (mock *recorderMock) RecordAnalyzerCalls() []struct {
	Ok      bool
	Elapsed time.Duration
} {
	mock.lockRecordAnalyzer.RLock()
	calls := mock.calls.RecordAnalyzer
	mock.lockRecordAnalyzer.RUnlock()
	return calls
}

func (mock *recorderMock) RecordDecision(outcome domain.Outcome, gate string) {
	if mock.RecordDecisionFunc == nil {
		panic("recorderMock.RecordDecisionFunc: method is nil but recorder.RecordDecision was just called")
	}
	callInfo := struct {
		Outcome domain.Outcome
		Gate    string
	}{Outcome: outcome, Gate: gate}
	mock.lockRecordDecision.Lock()
	mock.calls.RecordDecision = append(mock.calls.RecordDecision, callInfo)
	mock.lockRecordDecision.Unlock()
	mock.RecordDecisionFunc(outcome, gate)
}

func (mock *recorderMock) RecordDecisionCalls() []struct {
	Outcome domain.Outcome
	Gate    string
} {
	mock.lockRecordDecision.RLock()
	calls := mock.calls.RecordDecision
	mock.lockRecordDecision.RUnlock()
	return calls
}
