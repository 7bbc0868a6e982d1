/*
 * doc.go, part of gobands.
 *
 * Copyright 2026 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 * Gobands is developed at the laboratory for instruction in Swedish, Department of Chemistry,
 * University of Helsinki, Finland.
 *
 */

/*Package bands prepares electronic-structure data for band-structure and
density-of-states plotting. It takes the output of plane-wave ab-initio
calculations, as decoded by an external reader, and reduces it to the scalar
series a plotting program actually draws.



	**goBands capabilities**


    Parses line-mode KPOINTS files into an ordered high-symmetry path
	description, with de-duplicated tick labels and tick positions
	(subpackage kpoints). Plain, gzip- and zstd-compressed files are
	read transparently.

    Reduces orbital- and ion-projected band weights (the PROCAR tensor)
	to per-(k-point,band) fat-band weights for any selection of
	orbitals and ions.

    Partitions per-ion projected DOS matrices (the DOSCAR blocks) into
	per-ion-type partial DOS, either from declared per-type ion counts
	or from explicit ion index lists.

    Extracts single orbital channels from the per-type partial DOS,
	and shifts energies to the Fermi level.

All operations are pure transformations over data already in memory; the
library keeps no state between calls and the heavy PROCAR/DOSCAR decoding, as
well as the actual rendering, are left to external programs.*/
package bands
