/*
Package portfolio implements the recommendPortfolio intent: investor slot
validation, the risk-level catalog and the code hook that ties them to the
dialog responses of package lex.
*/
package portfolio
