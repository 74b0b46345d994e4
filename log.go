package main

import (
	"fmt"
	"io"
	"io/ioutil"
	"sync"
	"time"
)

type Logger struct {
	prefix string
	writer io.Writer
	mutex  *sync.Mutex
	debug  bool
}

func NewLogger() *Logger {
	var mutex sync.Mutex
	return &Logger{"", ioutil.Discard, &mutex, false}
}

func (log *Logger) ToWriter(writer io.Writer) *Logger {
	w := io.MultiWriter(log.writer, writer)
	return &Logger{log.prefix, w, log.mutex, log.debug}
}

func (log *Logger) WithPrefix(prefix string) *Logger {
	return &Logger{prefix, log.writer, log.mutex, log.debug}
}

func (log *Logger) WithDebug(debug bool) *Logger {
	return &Logger{log.prefix, log.writer, log.mutex, debug}
}

func (log *Logger) write(level, format string, args ...interface{}) {
	log.mutex.Lock()
	defer log.mutex.Unlock()
	now := time.Now().Format("2006-01-02 15:04:05.999")
	io.WriteString(log.writer, level+" "+now+" "+log.prefix+fmt.Sprintf(format, args...)+"\n")
}

func (log *Logger) Info(format string, args ...interface{}) {
	log.write("INFO", format, args...)
}

func (log *Logger) Debug(format string, args ...interface{}) {
	if log.debug {
		log.write("DEBUG", format, args...)
	}
}
