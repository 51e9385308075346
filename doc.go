/*
Command refframe converts celestial positions between coordinate systems,
applying Earth orientation parameters.

Program overview

Input is a file of positions, one per line:

	<date> <system> <longitude> <latitude>

Date is a UTC Julian date or an RFC 3339 time.  System is equatorial,
ecliptic, galactic or horizontal, or any unique prefix.  Longitude and
latitude are in degrees.  For horizontal coordinates longitude is azimuth,
measured from north through east.

Output is the position in each of the other systems.  Equatorial
coordinates are FK5, referred to the mean equator and equinox of date.
Ecliptic coordinates are referred to the ecliptic of date, with the true
obliquity.  Horizontal coordinates are computed only when a site is
configured.

Sample run, file gc.in containing the galactic center:

	2451545.0 gal 0 0

refframe gc.in gives

	2451545.000000  RA 17ʰ45ᵐ37.20ˢ Dec -28°56′10.2″  ecl ...

The library packages do the work.  See packages rotation, ellipsoid,
geodesy, eop, frame and observer.

Command line usage

  Usage: refframe [options] <file>      convert positions in file
         refframe [options] -           convert positions from stdin
         refframe -h                    display help and quick reference
         refframe -v                    display version and EOP coverage

  Options:
       -c <config-file>
       -e <eop-table-directory>
       -o <obscode-file>
       -p <path>

Configuring file locations

refframe.config and refframe.obscodes are read from the -p directory
unless -c or -o name them.  EOP table names in the config file are
relative to the -e directory, or without -e, the -p directory.
If refframe.obscodes is missing and a site is configured, a fresh copy is
downloaded from the Minor Planet Center.

File formats

The config file is optional.  Empty lines and lines beginning with # are
ignored.  Keywords:

	method <name>       reduction method, IAU1980, IAU2000A (default),
	                    IAU2000B or IAU2006
	tides               add ocean tide terms to polar motion and UT1
	                    (default)
	notides             don't
	predict             predict EOP past the end of tables
	fast                approximate trigonometry
	ellipsoid <name>    site ellipsoid, default WGS84
	site <obscode>      MPC observatory code of the site
	eop1980 <file>      IERS EOP table, 1980 nutation offsets
	eop2000 <file>      IERS EOP table, 2000 celestial pole offsets
	predict1980 <url>   prediction table, space delimited
	predict2000 <url>   prediction table, finals2000A columns
	algorithm <name>    planet theory for helio, VSOP87 or approximate
	helio               also output the heliocentric position of the site

EOP tables are the IERS C04 series or anything in the same space delimited
layout:  year month day MJD x y UT1-UTC followed by two error columns and
the two offset columns.  Lines that don't parse are ignored.

When a date is not covered by a table, parameters are zero and a warning
is logged to stderr.

-------------
Public domain.
*/
package main
