package logging

import (
	"log"
	"os"
)

var (
	InfoLog = log.New(os.Stdout, "[Info] ", log.Ltime|log.Lshortfile)
	WarnLog = log.New(os.Stdout, "[Warn] ", log.Ltime|log.Lshortfile)
	ErrLog  = log.New(os.Stderr, "[Error] ", log.Ltime|log.Lshortfile)
)
