// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	AlreadyInitialised            = ExistsError("already initialised")
	AlreadyRegistered             = ExistsError("hotkey already registered on subnetwork")
	AmountTooLarge                = InvalidError("amount too large")
	CertificateFileAlreadyExists  = ExistsError("certificate file already exists")
	DanglingUid                   = RecordError("row references a uid with no registered hotkey")
	DatabaseIsNotSet              = ProcessError("database is not set")
	DuplicateUids                 = InvalidError("duplicate uids in weight vector")
	EmissionRatioSumExceeded      = InvalidError("sum of emission ratios would exceed one")
	InconsistentRowLength         = RecordError("row length disagrees with slot count")
	InconsistentStakeTotal        = RecordError("stake total is less than a hotkey stake")
	InsufficientBalance           = InvalidError("insufficient balance")
	InvalidAccount                = InvalidError("invalid account")
	InvalidBlockNumber            = InvalidError("invalid block number")
	InvalidChecksum               = InvalidError("checksum mismatch")
	InvalidCount                  = InvalidError("invalid count")
	InvalidConfiguration          = InvalidError("configuration file must return a table")
	InvalidDifficulty             = InvalidError("invalid difficulty")
	InvalidHyperparameter         = InvalidError("invalid hyperparameter value")
	InvalidIpAddress              = InvalidError("invalid IP address")
	InvalidIpType                 = InvalidError("invalid IP type")
	InvalidKeyLength              = InvalidError("invalid key length")
	InvalidLoggerChannel          = InvalidError("invalid logger channel")
	InvalidModality               = InvalidError("invalid modality")
	InvalidNetuid                 = InvalidError("invalid network uid")
	InvalidPort                   = InvalidError("invalid port number")
	InvalidPrivateKeyFile         = InvalidError("invalid private key file")
	InvalidProofOfWork            = InvalidError("registration proof of work is not valid")
	InvalidPublicKeyFile          = InvalidError("invalid public key file")
	InvalidSignature              = InvalidError("invalid signature")
	InvalidStructPointer          = InvalidError("invalid struct pointer")
	InvalidTempo                  = InvalidError("invalid tempo")
	InvalidUid                    = InvalidError("invalid uid")
	InvalidVectorName             = InvalidError("invalid vector name")
	KeyFileAlreadyExists          = ExistsError("key file already exists")
	MaxAllowedMaxMinRatioExceeded = InvalidError("weight max/min ratio exceeds maximum allowed")
	MaxAllowedUidsTooSmall        = InvalidError("maximum allowed uids is less than current slot count")
	MissingParameters             = InvalidError("missing parameters")
	NonAssociatedColdKey          = InvalidError("coldkey is not associated with hotkey")
	NotAuthorised                 = InvalidError("caller is not authorised")
	NotEnoughBalanceToStake       = InvalidError("not enough balance to stake")
	NotEnoughStakeToWithdraw      = InvalidError("not enough stake to withdraw")
	NotInitialised                = NotFoundError("not initialised")
	NotRegistered                 = NotFoundError("hotkey is not registered")
	NotSettingEnoughWeights       = InvalidError("not setting enough weights")
	RateLimiting                  = InvalidError("rate limiting")
	SubnetworkAlreadyExists       = ExistsError("subnetwork already exists")
	SubnetworkFull                = InvalidError("subnetwork full with no eligible eviction target")
	SubnetworkNotFound            = NotFoundError("subnetwork does not exist")
	TransactionAlreadyInUse       = ProcessError("transaction already in use")
	TruncatedRecord               = LengthError("truncated record")
	UnorderedRow                  = RecordError("row is not in ascending uid order")
	VectorLengthMismatch          = RecordError("vector length disagrees with slot count")
	WeightVecNotEqualSize         = LengthError("weight and uid vectors differ in length")
	ZeroAmount                    = InvalidError("amount must be greater than zero")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool   { _, ok := e.(RecordError); return ok }

// IsRejection - true for the expected, validated-before-mutation
// classes; false for internal consistency faults and process errors
func IsRejection(e error) bool {
	return IsErrExists(e) || IsErrInvalid(e) || IsErrLength(e) || IsErrNotFound(e)
}
