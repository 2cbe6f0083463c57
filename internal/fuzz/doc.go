// Package fuzztests holds Go fuzz harnesses for the GDScript pipeline
// (source -> lexer -> indent -> parser -> format). They look for panics and
// hangs on arbitrary input.
//
// Назначение: прогонять случайные байты через лексер, парсер и форматтер.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
package fuzztests
