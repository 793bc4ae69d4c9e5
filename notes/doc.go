/*
Package notes holds the table of blockchain and EVM notes and the printer
that writes it out.

The table is an ordered list of sections. Each section owns a banner line,
its note lines, optional subsections and an optional closing rule. Flattened,
the table is the exact sequence of lines the printer emits, in declaration
order.
*/
package notes
