package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError
	WriteFileError

	// Logging errors
	CreateLogFileError

	// Input errors
	MissingInputError
	ConsensusMapArityError
	ConsensusMapFormatError
	ConsensusMapEmptyError
	ConsensusMapPrefixError
	NewickParseError
	NewickEmptyError

	// Decoration errors
	RankSchemaError
	TrieLookupError
	UnknownRankPrefixError
	NonUniqueTipSetError
	UnnamedTipSetError
	BinomialConflictError
	UnknownScoreError
	InconsistentPathsError
	UnknownFormatError

	// Name checking errors
	NameCacheError

	// Archive errors
	DBConnectionError
	DBNotConnectedError
	DBTableCheckError
	ArchiveSchemaError
	ArchiveSaveError
	ArchiveBackendError
)
