package httpserver

var ParseBodyLimit = parseBodyLimit
