// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package xhttptest

import "github.com/stretchr/testify/mock"

// MockBody is a stretchr mock for a response body, which is really just an io.ReadCloser.
// This is mainly useful when testing error cases.
type MockBody struct {
	mock.Mock
}

// OnReadError sets an expectation for a call to Read, with any byte slice, that returns the given error.
func (mb *MockBody) OnReadError(err error) *mock.Call {
	return mb.On("Read", mock.Anything).Return(0, err)
}

// OnCloseError sets an expectation for a call to Close that simply returns the given error.
func (mb *MockBody) OnCloseError(err error) *mock.Call {
	return mb.On("Close").Return(err)
}

func (mb *MockBody) Read(p []byte) (int, error) {
	arguments := mb.Called(p)
	return arguments.Int(0), arguments.Error(1)
}

func (mb *MockBody) Close() error {
	return mb.Called().Error(0)
}
